package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/wordcosmo/vmath"
)

// TestSpatialHashQueryRadius verifies block queries at radius 0 and 1
func TestSpatialHashQueryRadius(t *testing.T) {
	h := NewSpatialHash(10)
	h.Rebuild([]vmath.Vec2{{X: 5, Y: 5}, {X: 15, Y: 5}})

	got := h.Query(vmath.Vec2{X: 5, Y: 5}, 0, nil)
	if !slices.Equal(got, []int{0}) {
		t.Errorf("Expected radius 0 query to return [0], got %v", got)
	}

	got = h.Query(vmath.Vec2{X: 5, Y: 5}, 1, nil)
	slices.Sort(got)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Expected radius 1 query to return [0 1], got %v", got)
	}
}

// TestSpatialHashNegativeCoordinates verifies floor keying across the origin
func TestSpatialHashNegativeCoordinates(t *testing.T) {
	h := NewSpatialHash(10)
	if k := h.Key(vmath.Vec2{X: -0.5, Y: 9.99}); k != (CellKey{X: -1, Y: 0}) {
		t.Errorf("Expected cell (-1,0), got %v", k)
	}
	h.Rebuild([]vmath.Vec2{{X: -1, Y: -1}, {X: 1, Y: 1}})
	if got := h.Query(vmath.Vec2{X: -1, Y: -1}, 0, nil); !slices.Equal(got, []int{0}) {
		t.Errorf("Expected only index 0 in cell (-1,-1), got %v", got)
	}
}

// TestSpatialHashRebuildForgetsOldPositions verifies rebuild replaces prior contents
func TestSpatialHashRebuildForgetsOldPositions(t *testing.T) {
	h := NewSpatialHash(6)
	h.Rebuild([]vmath.Vec2{{X: 100, Y: 100}})
	h.Rebuild([]vmath.Vec2{{X: 0, Y: 0}})

	if got := h.Query(vmath.Vec2{X: 100, Y: 100}, 0, nil); len(got) != 0 {
		t.Errorf("Expected stale cell to be empty, got %v", got)
	}
	buf := make([]int, 0, 4)
	buf = h.Query(vmath.Vec2{}, -3, buf)
	if !slices.Equal(buf, []int{0}) {
		t.Errorf("Expected negative radius to behave as 0, got %v", buf)
	}
}

// TestSpatialHashRejectsBadCellSize verifies construction fails fast
func TestSpatialHashRejectsBadCellSize(t *testing.T) {
	for _, size := range []float64{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for cell size %v", size)
				}
			}()
			NewSpatialHash(size)
		}()
	}
}

// TestSpatialHashQueryMonotonic verifies a wider query contains every narrower result
func TestSpatialHashQueryMonotonic(t *testing.T) {
	rng := vmath.NewFastRand(99)
	pts := make([]vmath.Vec2, 200)
	for i := range pts {
		pts[i] = vmath.Vec2{X: rng.Range(-60, 60), Y: rng.Range(-30, 30)}
	}
	h := NewSpatialHash(6)
	h.Rebuild(pts)

	for i, p := range pts {
		if got := h.Query(p, 0, nil); !slices.Contains(got, i) {
			t.Fatalf("Expected point %d in its own cell query", i)
		}
		for r := 1; r <= 4; r++ {
			inner := h.Query(p, r-1, nil)
			outer := h.Query(p, r, nil)
			for _, idx := range inner {
				if !slices.Contains(outer, idx) {
					t.Fatalf("Expected radius %d result to contain %d from radius %d", r, idx, r-1)
				}
			}
		}
	}
}
