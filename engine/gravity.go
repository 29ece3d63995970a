package engine

import (
	"math"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/physics"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// GravityDebug samples the gravity pass for the first visible word of a tick
type GravityDebug struct {
	Sampled    bool
	ID         WordID
	Candidates int
	Within     int // Contributions with non-zero weight
	AccMag     float64
	DeltaV     float64 // |acc|*dt after clamping

	// Nearest candidate regardless of visibility
	HasNearest         bool
	NearestDist        float64
	NearestCut         bool
	NearestMassVisible float64
	NearestSubVisible  bool
}

// applyGravity accumulates neighbor attraction for every word, then applies it and the sun pulse
// Sources below the visibility floor exert no force but still receive it
func (w *World) applyGravity(dt float64) {
	n := len(w.words)
	if cap(w.acc) < n {
		w.acc = make([]vmath.Vec2, n)
	}
	w.acc = w.acc[:n]

	debugIdx := -1
	for i := range w.words {
		if w.words[i].Visible() {
			debugIdx = i
			break
		}
	}
	w.gravDebug = GravityDebug{}

	for i := range w.words {
		pos := w.words[i].Pos
		w.neighbors = w.spatial.Query(pos, parameter.GravityCellRadius, w.neighbors)
		if len(w.neighbors) > 0 {
			w.cur.gravityCandidates += len(w.neighbors) - 1
		}

		sample := i == debugIdx
		var dbg GravityDebug
		var acc vmath.Vec2
		for _, j := range w.neighbors {
			if j == i {
				continue
			}
			src := &w.words[j]
			delta := vmath.V2Sub(src.Pos, pos)

			if sample {
				dbg.Candidates++
				if d := vmath.V2Mag(delta); !dbg.HasNearest || d < dbg.NearestDist {
					dbg.HasNearest = true
					dbg.NearestDist = d
					dbg.NearestCut = physics.CutoffWeight(d, w.gravity.Cutoff, w.gravity.FadeStartFrac) == 0
					dbg.NearestMassVisible = src.MassVisible
					dbg.NearestSubVisible = !src.Visible()
				}
			}

			if !src.Visible() {
				continue
			}
			a, _, ok := physics.GravityAccel(delta, src.MassVisible, &w.gravity)
			if !ok {
				continue
			}
			if sample {
				dbg.Within++
			}
			acc = vmath.V2Add(acc, a)
		}

		acc = physics.ClampDeltaV(acc, dt, w.gravity.MaxDeltaV)
		w.acc[i] = acc

		if sample {
			dbg.Sampled = true
			dbg.ID = w.words[i].ID
			dbg.AccMag = vmath.V2Mag(acc)
			dbg.DeltaV = dbg.AccMag * math.Abs(dt)
			w.gravDebug = dbg
		}
	}

	for i := range w.words {
		physics.ApplyAccel(&w.words[i].Kinetic, w.acc[i], dt)
	}

	if w.hasSun {
		for i := range w.words {
			physics.ApplyRadialPulse(&w.words[i].Kinetic, w.sun.Center, w.sun.Radius, w.sun.Strength, dt)
		}
	}
}
