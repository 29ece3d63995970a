package engine

import (
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// ColorID is a palette slot resolved to a terminal color by the renderer
type ColorID uint8

const (
	ColorWhite ColorID = iota
	ColorCyan
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorRed
	ColorGray
	ColorTrail
	ColorSpark
)

// Effect is a cosmetic particle with no simulation identity
type Effect struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	TTL   float64
	Glyph rune
	Color ColorID
}

// EffectPool is a bounded pool of effects; the oldest is overwritten when full
type EffectPool struct {
	ring *core.Ring[Effect]
}

func NewEffectPool(capacity int) *EffectPool {
	return &EffectPool{ring: core.NewRing[Effect](capacity)}
}

func (p *EffectPool) Push(e Effect) {
	p.ring.Push(e)
}

// Update advances every effect and drops those whose TTL ran out
func (p *EffectPool) Update(dt float64) {
	p.ring.Each(func(e *Effect) {
		e.Pos = vmath.V2Add(e.Pos, vmath.V2Scale(e.Vel, dt))
		e.TTL -= dt
	})
	p.ring.Retain(func(e *Effect) bool { return e.TTL > 0 })
}

func (p *EffectPool) Len() int { return p.ring.Len() }

func (p *EffectPool) Cap() int { return p.ring.Cap() }

// AppendTo appends live effects oldest first
func (p *EffectPool) AppendTo(dst []Effect) []Effect {
	return p.ring.AppendTo(dst)
}

// spawnEffectRing emits count evenly spaced particles radiating from center
func (w *World) spawnEffectRing(center vmath.Vec2, count int, glyph rune, color ColorID) {
	for i := range count {
		dir := vmath.V2FromAngle(float64(i) / float64(count) * vmath.Tau)
		speed := w.rng.Range(parameter.EffectSpeedMin, parameter.EffectSpeedMax)
		w.effects.Push(Effect{
			Pos:   vmath.V2Add(center, dir),
			Vel:   vmath.V2Scale(dir, speed),
			TTL:   parameter.EffectTTL,
			Glyph: glyph,
			Color: color,
		})
	}
}
