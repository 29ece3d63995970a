package physics

import (
	"math"

	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// GravityProfile holds the tunables of the softened, cut-off gravity law
type GravityProfile struct {
	G             float64 // Gravitational constant
	Softening     float64 // Added to d² in the denominator
	Cutoff        float64 // Distance where weight reaches 0
	FadeStartFrac float64 // Fraction of Cutoff where fading begins
	MinSourceMass float64 // Floor applied to source mass
	MinDistSq     float64 // Pairs closer than this are skipped
	MaxDeltaV     float64 // Cap on |acc|*dt per tick
}

// CutoffWeight returns the interaction weight at dist
// 1 below fadeFrac*cutoff, 0 at/after cutoff, 1-smoothstep strictly decreasing in between
func CutoffWeight(dist, cutoff, fadeFrac float64) float64 {
	if dist >= cutoff {
		return 0
	}
	fadeStart := cutoff * fadeFrac
	if dist < fadeStart {
		return 1
	}
	return 1 - vmath.Smoothstep(fadeStart, cutoff, dist)
}

// GravitySample is one contribution to an acceleration sum
type GravitySample struct {
	Weight float64
	Dist   float64
}

// GravityAccel returns the acceleration toward a source at delta = source - target
// ok is false when the pair is skipped by the distance guard or the cutoff
func GravityAccel(delta vmath.Vec2, sourceMass float64, p *GravityProfile) (acc vmath.Vec2, s GravitySample, ok bool) {
	distSq := vmath.V2MagSq(delta)
	if distSq < p.MinDistSq {
		return vmath.Vec2{}, GravitySample{}, false
	}
	dist := math.Sqrt(distSq)
	w := CutoffWeight(dist, p.Cutoff, p.FadeStartFrac)
	s = GravitySample{Weight: w, Dist: dist}
	if w == 0 {
		return vmath.Vec2{}, s, false
	}
	mag := p.G * math.Max(sourceMass, p.MinSourceMass) * w / (distSq + p.Softening)
	return vmath.V2Scale(delta, mag/dist), s, true
}

// ClampDeltaV limits acc so |acc|*dt does not exceed maxDeltaV, preserving direction
func ClampDeltaV(acc vmath.Vec2, dt, maxDeltaV float64) vmath.Vec2 {
	if dt <= 0 {
		return acc
	}
	return vmath.V2ClampMag(acc, maxDeltaV/dt)
}

// ApplyRadialPulse pushes k away from center when within radius
// A body exactly at the center is pushed along the fallback axis
func ApplyRadialPulse(k *core.Kinetic, center vmath.Vec2, radius, strength, dt float64) bool {
	delta := vmath.V2Sub(k.Pos, center)
	distSq := vmath.V2MagSq(delta)
	if distSq > radius*radius {
		return false
	}
	dir := vmath.AxisX
	if distSq > 0 {
		dir = vmath.V2Normalize(delta)
	}
	k.Vel = vmath.V2Add(k.Vel, vmath.V2Scale(dir, strength*dt))
	return true
}
