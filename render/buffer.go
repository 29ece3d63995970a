package render

import (
	"math"

	"github.com/lixenwraith/wordcosmo/engine"
)

// Cell is one frame buffer slot; Mass is the draw priority of the current occupant
type Cell struct {
	Rune  rune
	Mass  float64
	Color engine.ColorID
}

var emptyCell = Cell{Rune: ' ', Mass: math.Inf(-1), Color: engine.ColorWhite}

// FrameBuffer is a grid of cells where heavier writes win
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer creates a cleared buffer of the given size
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *FrameBuffer) Width() int  { return b.width }
func (b *FrameBuffer) Height() int { return b.height }

func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields an empty cell
func (b *FrameBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes r if mass is at least the occupant's; ties go to the later write
func (b *FrameBuffer) Set(x, y int, r rune, mass float64, color engine.ColorID) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if mass >= dst.Mass {
		dst.Rune = r
		dst.Mass = mass
		dst.Color = color
	}
}
