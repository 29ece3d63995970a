package engine

import (
	"slices"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// applyEvents drains the event queue in order
// Consumed words are removed in one pass, indices rebuilt, then results spawned
func (w *World) applyEvents() {
	if len(w.events) == 0 {
		return
	}
	clear(w.consumed)
	w.pending = w.pending[:0]

	for _, ev := range w.events {
		switch ev.Kind {
		case EventMerge:
			w.applyMerge(ev.A, ev.B)
		case EventSplit:
			w.applySplit(ev.A)
		}
	}
	w.events = w.events[:0]

	if len(w.consumed) > 0 {
		w.words = slices.DeleteFunc(w.words, func(wd Word) bool {
			_, gone := w.consumed[wd.ID]
			return gone
		})
		w.rebuildIndices()
		w.rebuildDustPool()
	}

	for i := range w.pending {
		w.spawnOrAbsorb(w.pending[i])
	}
	w.pending = w.pending[:0]
}

func (w *World) isConsumed(id WordID) bool {
	_, ok := w.consumed[id]
	return ok
}

// applyMerge combines a and b with mass-weighted kinematics and joined text
// The word at the lower arena index contributes the leading text
func (w *World) applyMerge(aID, bID WordID) {
	if aID == bID || w.isConsumed(aID) || w.isConsumed(bID) {
		return
	}
	ia, okA := w.idIndex[aID]
	ib, okB := w.idIndex[bID]
	if !okA || !okB {
		return
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	x, y := &w.words[ia], &w.words[ib]

	req := spawnRequest{
		text:        JoinText(x.Text, y.Text),
		pos:         vmath.V2WeightedMean(x.Pos, x.MassTotal, y.Pos, y.MassTotal),
		vel:         vmath.V2WeightedMean(x.Vel, x.MassTotal, y.Vel, y.MassTotal),
		massVisible: x.MassVisible + y.MassVisible,
		massDust:    x.MassDust + y.MassDust,
	}
	w.consumed[x.ID] = struct{}{}
	w.consumed[y.ID] = struct{}{}
	w.pending = append(w.pending, req)

	w.spawnEffectRing(req.pos, parameter.MergeBurstCount, '+', ColorYellow)
	w.cur.merges++
	w.log.Debug("merge", "a", x.ID, "b", y.ID, "text", req.text, "mass", req.total())
}

// applySplit breaks a multi-component word into 2..N fragments ejected radially
func (w *World) applySplit(id WordID) {
	if w.isConsumed(id) {
		return
	}
	idx, ok := w.idIndex[id]
	if !ok {
		return
	}
	base := w.words[idx]
	if !base.CanSplit || base.MassTotal <= parameter.SplitMinMass {
		return
	}
	comps := Components(base.Text)
	if len(comps) < 2 {
		return
	}
	w.consumed[id] = struct{}{}

	hi := max(parameter.SplitPartsMin, min(parameter.SplitPartsMax, len(comps)))
	groups := SplitGroups(comps, w.rng.IntRange(parameter.SplitPartsMin, hi))
	parts := float64(len(groups))
	partVisible := base.MassVisible / parts
	partDust := base.MassDust / parts

	for _, text := range groups {
		dir := w.rng.Direction()
		jitter := vmath.Vec2{
			X: w.rng.Range(-parameter.SplitJitter, parameter.SplitJitter),
			Y: w.rng.Range(-parameter.SplitJitter, parameter.SplitJitter),
		}
		offset := vmath.V2Scale(dir, base.Radius*parameter.SplitOffsetFactor)
		radial := vmath.V2Scale(dir, parameter.SplitRadialSpeed)
		w.pending = append(w.pending, spawnRequest{
			text:        text,
			pos:         vmath.V2Add(base.Pos, offset),
			vel:         vmath.V2Add(vmath.V2Add(base.Vel, jitter), radial),
			massVisible: partVisible,
			massDust:    partDust,
		})
	}

	w.spawnEffectRing(base.Pos, parameter.SplitBurstCount, '*', ColorRed)
	w.cur.splits++
	w.log.Debug("split", "id", id, "text", base.Text, "parts", len(groups))
}
