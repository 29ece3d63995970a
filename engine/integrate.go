package engine

import (
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/physics"
)

// integrate advances positions, reflects at the bounds and records trails
func (w *World) integrate(dt float64) {
	for i := range w.words {
		wd := &w.words[i]
		physics.Integrate(&wd.Kinetic, dt)
		physics.ReflectBounds(&wd.Kinetic, parameter.WorldHalfWidth, parameter.WorldHalfHeight, parameter.BounceDamp)
		wd.recordTrail()
	}
}
