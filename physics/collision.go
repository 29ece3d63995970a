package physics

import (
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// ContactProfile defines contact resolution parameters
type ContactProfile struct {
	Restitution float64 // Fraction of closing speed reversed
	MinDist     float64 // Center distance treated as coincident
}

// Contact describes the outcome of one pair resolution
type Contact struct {
	Touching bool
	Normal   vmath.Vec2 // From a toward b
	Overlap  float64
	Closing  bool    // Normal relative velocity was negative before the impulse
	RelSpeed float64 // |vb - va| after resolution
}

// InvMass returns 1/m, or 0 for non-positive mass (immovable)
func InvMass(m float64) float64 {
	if m > 0 {
		return 1 / m
	}
	return 0
}

// ResolveContact separates two overlapping circles and applies a restitution impulse
// a and b must be distinct bodies; positions move by half the overlap each along the normal
func ResolveContact(a, b *core.Kinetic, radiusA, radiusB, invMassA, invMassB float64, p *ContactProfile) Contact {
	delta := vmath.V2Sub(b.Pos, a.Pos)
	dist := vmath.V2Mag(delta)
	minDist := radiusA + radiusB
	if dist >= minDist {
		return Contact{}
	}

	normal := vmath.AxisX
	if dist > p.MinDist {
		normal = vmath.V2Scale(delta, 1/dist)
	}
	overlap := minDist - dist
	half := vmath.V2Scale(normal, overlap*0.5)
	a.Pos = vmath.V2Sub(a.Pos, half)
	b.Pos = vmath.V2Add(b.Pos, half)

	c := Contact{Touching: true, Normal: normal, Overlap: overlap}

	relAlong := vmath.V2Dot(vmath.V2Sub(b.Vel, a.Vel), normal)
	if relAlong < 0 {
		c.Closing = true
		invSum := invMassA + invMassB
		if invSum > 0 {
			j := -(1 + p.Restitution) * relAlong / invSum
			impulse := vmath.V2Scale(normal, j)
			ApplyImpulse(a, vmath.V2Scale(impulse, -invMassA))
			ApplyImpulse(b, vmath.V2Scale(impulse, invMassB))
		}
	}

	c.RelSpeed = vmath.V2Mag(vmath.V2Sub(b.Vel, a.Vel))
	return c
}
