package engine

import (
	"slices"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// weather moves a fraction of every word's visible mass into its own dust
func (w *World) weather(dt float64) {
	f := parameter.WeatheringRate * dt
	for i := range w.words {
		wd := &w.words[i]
		amount := wd.MassVisible * f
		wd.setMass(wd.MassVisible-amount, wd.MassDust+amount)
	}
	w.rebuildDustPool()
}

// autogenesis regenerates visible mass from dust while the visible population is below the floor
// Identities without a live word are reborn at a random position
// Pool keys are visited in sorted order so the random stream advances deterministically
func (w *World) autogenesis(dt float64) {
	if w.visibleCount() >= parameter.KVisibleMin {
		return
	}
	f := parameter.AutogenesisRate * dt

	w.dustKeys = w.dustKeys[:0]
	for text, dust := range w.dustPool {
		if dust > 0 {
			w.dustKeys = append(w.dustKeys, text)
		}
	}
	slices.Sort(w.dustKeys)

	for _, text := range w.dustKeys {
		if id, ok := w.textIndex[text]; ok {
			if idx, ok := w.idIndex[id]; ok {
				wd := &w.words[idx]
				amount := wd.MassDust * f
				wd.setMass(wd.MassVisible+amount, wd.MassDust-amount)
				w.dustPool[text] = wd.MassDust
				continue
			}
		}

		dust := w.dustPool[text]
		amount := dust * f
		pos := vmath.Vec2{
			X: w.rng.Range(-parameter.WorldHalfWidth, parameter.WorldHalfWidth),
			Y: w.rng.Range(-parameter.WorldHalfHeight, parameter.WorldHalfHeight),
		}
		vel := vmath.Vec2{
			X: w.rng.Range(-parameter.AutogenesisSpeedMax, parameter.AutogenesisSpeedMax),
			Y: w.rng.Range(-parameter.AutogenesisSpeedMax, parameter.AutogenesisSpeedMax),
		}
		w.spawnOrAbsorb(spawnRequest{
			text:        text,
			pos:         pos,
			vel:         vel,
			massVisible: amount,
			massDust:    dust - amount,
		})
		w.cur.births++
	}
}
