package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/wordcosmo/vmath"
)

// CellKey addresses one grid cell
type CellKey struct {
	X, Y int
}

// SpatialHash is an unbounded uniform grid mapping cells to arena indices
// Rebuilt from scratch every tick; no incremental updates
type SpatialHash struct {
	cellSize float64
	inv      float64
	cells    map[CellKey][]int
}

// NewSpatialHash creates a grid with the given cell edge
// Panics if cellSize is not finite and positive
func NewSpatialHash(cellSize float64) *SpatialHash {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		panic(fmt.Sprintf("spatial hash: cell size must be positive and finite, got %v", cellSize))
	}
	return &SpatialHash{
		cellSize: cellSize,
		inv:      1 / cellSize,
		cells:    make(map[CellKey][]int),
	}
}

// CellSize returns the cell edge length
func (h *SpatialHash) CellSize() float64 {
	return h.cellSize
}

// Key returns the cell containing pos
func (h *SpatialHash) Key(pos vmath.Vec2) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X / h.cellSize)),
		Y: int(math.Floor(pos.Y / h.cellSize)),
	}
}

// Clear empties all cells, keeping bucket capacity
func (h *SpatialHash) Clear() {
	for k, v := range h.cells {
		h.cells[k] = v[:0]
	}
}

// Rebuild indexes positions by their slice index
func (h *SpatialHash) Rebuild(positions []vmath.Vec2) {
	h.Clear()
	for i, p := range positions {
		k := h.Key(p)
		h.cells[k] = append(h.cells[k], i)
	}
}

// Query appends to out[:0] every index in the (2r+1)×(2r+1) block centered on pos's cell
// Order is arbitrary; the result may contain the querying index itself
func (h *SpatialHash) Query(pos vmath.Vec2, radius int, out []int) []int {
	out = out[:0]
	if radius < 0 {
		radius = 0
	}
	c := h.Key(pos)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if bucket := h.cells[CellKey{c.X + dx, c.Y + dy}]; len(bucket) > 0 {
				out = append(out, bucket...)
			}
		}
	}
	return out
}
