package engine

import (
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// WordID identifies a word; assigned monotonically from 1 and never reused
type WordID uint64

// Word is a simulated particle with a textual identity
type Word struct {
	ID   WordID
	Text string

	core.Kinetic

	// Radius is derived from MassTotal by setMass
	Radius float64

	MassVisible float64
	MassDust    float64
	MassTotal   float64

	CanSplit bool

	Trail *core.Ring[vmath.Vec2]
}

// RadiusForMass is the collision radius of a word of total mass m
func RadiusForMass(m float64) float64 {
	return parameter.WordRadiusBase + parameter.WordRadiusScale*m
}

// setMass is the single write path for mass; keeps total and radius consistent
func (w *Word) setMass(visible, dust float64) {
	w.MassVisible = visible
	w.MassDust = dust
	w.MassTotal = visible + dust
	w.Radius = RadiusForMass(w.MassTotal)
}

// Visible reports whether the word is at or above the visibility floor
func (w *Word) Visible() bool {
	return w.MassVisible >= parameter.MinVisibleMass
}

// recordTrail pushes the current position into the trail ring
func (w *Word) recordTrail() {
	w.Trail.Push(w.Pos)
}

// spawnRequest is a pending word creation routed through spawn-or-absorb
type spawnRequest struct {
	text        string
	pos, vel    vmath.Vec2
	massVisible float64
	massDust    float64
}

func (r *spawnRequest) total() float64 {
	return r.massVisible + r.massDust
}
