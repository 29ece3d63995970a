package render

import (
	"math"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// Camera maps world coordinates to viewport cells; Pos is the viewport centre
type Camera struct {
	Pos  vmath.Vec2
	Zoom float64
}

func NewCamera() Camera {
	return Camera{Zoom: parameter.CameraZoom}
}

// ToScreen projects p into a width×height viewport, rounding to the nearest cell
func (c Camera) ToScreen(p vmath.Vec2, width, height int) (int, int) {
	sx := (p.X-c.Pos.X)*c.Zoom + float64(width)/2
	sy := (p.Y-c.Pos.Y)*c.Zoom + float64(height)/2
	return int(math.Round(sx)), int(math.Round(sy))
}

// Follow moves the camera a fraction alpha toward target
func (c *Camera) Follow(target vmath.Vec2, alpha float64) {
	c.Pos = vmath.V2Lerp(c.Pos, target, alpha)
}
