package engine

import (
	"math"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/physics"
)

// resolveCollisions resolves every touching pair once and queues structural events
// Pairs where both words are below the visibility floor are skipped
func (w *World) resolveCollisions() {
	for i := range w.words {
		w.neighbors = w.spatial.Query(w.words[i].Pos, parameter.CollisionCellRadius, w.neighbors)
		if len(w.neighbors) > 0 {
			w.cur.collisionCandidates += len(w.neighbors) - 1
		}
		for _, j := range w.neighbors {
			if j <= i {
				continue
			}
			a, b := &w.words[i], &w.words[j]
			if !a.Visible() && !b.Visible() {
				continue
			}
			c := physics.ResolveContact(
				&a.Kinetic, &b.Kinetic,
				a.Radius, b.Radius,
				physics.InvMass(a.MassVisible), physics.InvMass(b.MassVisible),
				&w.contact,
			)
			if !c.Touching {
				continue
			}
			w.classifyContact(a, b, c.RelSpeed)
		}
	}
}

// classifyContact queues a merge for gentle contacts, or splits of both words for violent or tidal ones
func (w *World) classifyContact(a, b *Word, relSpeed float64) {
	switch {
	case relSpeed <= parameter.MergeRelSpeedMax:
		w.events = append(w.events, mergeEvent(a.ID, b.ID))
	case relSpeed >= parameter.SplitRelSpeedMin || massRatio(a.MassTotal, b.MassTotal) >= parameter.TidalMassRatio:
		w.events = append(w.events, splitEvent(a.ID), splitEvent(b.ID))
	}
}

// massRatio is max/min with the smaller side floored
func massRatio(a, b float64) float64 {
	hi, lo := math.Max(a, b), math.Min(a, b)
	return hi / math.Max(lo, parameter.MassRatioFloor)
}
