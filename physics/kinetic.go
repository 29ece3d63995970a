package physics

import (
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// Integrate performs p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
}

// ApplyAccel performs v = v + a*dt
func ApplyAccel(k *core.Kinetic, acc vmath.Vec2, dt float64) {
	k.Vel = vmath.V2Add(k.Vel, vmath.V2Scale(acc, dt))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}

// ReflectAxis clamps *p into [-half, half] and reverses *v scaled by damp on contact
// Returns true if reflection occurred
func ReflectAxis(p, v *float64, half, damp float64) bool {
	if *p < -half {
		*p = -half
		*v = -*v * damp
		return true
	}
	if *p > half {
		*p = half
		*v = -*v * damp
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(k *core.Kinetic, halfW, halfH, damp float64) bool {
	rx := ReflectAxis(&k.Pos.X, &k.Vel.X, halfW, damp)
	ry := ReflectAxis(&k.Pos.Y, &k.Vel.Y, halfH, damp)
	return rx || ry
}
