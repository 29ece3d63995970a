package core

import "github.com/lixenwraith/wordcosmo/vmath"

// Kinetic is the integrable state of a body in world units
type Kinetic struct {
	// Pos is the world-space position (origin at world center)
	Pos vmath.Vec2
	// Vel is velocity in world units per second
	Vel vmath.Vec2
}
