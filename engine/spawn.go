package engine

import (
	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// spawnOrAbsorb adds mass to the live word sharing req.text, or creates a new word
// Absorption blends position and velocity by total mass
func (w *World) spawnOrAbsorb(req spawnRequest) WordID {
	if id, ok := w.textIndex[req.text]; ok {
		if idx, ok := w.idIndex[id]; ok {
			wd := &w.words[idx]
			add := req.total()
			wd.Pos = vmath.V2WeightedMean(wd.Pos, wd.MassTotal, req.pos, add)
			wd.Vel = vmath.V2WeightedMean(wd.Vel, wd.MassTotal, req.vel, add)
			wd.setMass(wd.MassVisible+req.massVisible, wd.MassDust+req.massDust)
			w.dustPool[wd.Text] = wd.MassDust

			w.cur.absorbs++
			w.spawnEffectRing(wd.Pos, parameter.AbsorbBurstCount, '+', ColorMagenta)
			return wd.ID
		}
	}

	trail := core.NewRing[vmath.Vec2](parameter.TrailLength)
	trail.Fill(req.pos)

	wd := Word{
		ID:       w.allocID(),
		Text:     req.text,
		Kinetic:  core.Kinetic{Pos: req.pos, Vel: req.vel},
		CanSplit: true,
		Trail:    trail,
	}
	wd.setMass(req.massVisible, req.massDust)

	w.words = append(w.words, wd)
	w.textIndex[wd.Text] = wd.ID
	w.idIndex[wd.ID] = len(w.words) - 1
	w.dustPool[wd.Text] = wd.MassDust
	return wd.ID
}
