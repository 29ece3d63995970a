package engine

import (
	"github.com/lixenwraith/wordcosmo/vmath"
)

// consolidateDuplicates folds words sharing identical text into one
// The survivor keeps the id and trail of the heaviest contributor and sits at the first contributor's slot
func (w *World) consolidateDuplicates() {
	seen := make(map[string]struct{}, len(w.words))
	dup := false
	for i := range w.words {
		if _, ok := seen[w.words[i].Text]; ok {
			dup = true
			break
		}
		seen[w.words[i].Text] = struct{}{}
	}
	if !dup {
		return
	}

	order := make([]string, 0, len(w.words))
	groups := make(map[string][]int, len(w.words))
	for i := range w.words {
		t := w.words[i].Text
		if _, ok := groups[t]; !ok {
			order = append(order, t)
		}
		groups[t] = append(groups[t], i)
	}

	merged := make([]Word, 0, len(order))
	for _, text := range order {
		idxs := groups[text]
		acc := w.words[idxs[0]]
		heaviest := idxs[0]
		for _, k := range idxs[1:] {
			o := &w.words[k]
			acc.Pos = vmath.V2WeightedMean(acc.Pos, acc.MassTotal, o.Pos, o.MassTotal)
			acc.Vel = vmath.V2WeightedMean(acc.Vel, acc.MassTotal, o.Vel, o.MassTotal)
			acc.setMass(acc.MassVisible+o.MassVisible, acc.MassDust+o.MassDust)
			if o.MassTotal > w.words[heaviest].MassTotal {
				heaviest = k
			}
		}
		if len(idxs) > 1 {
			h := &w.words[heaviest]
			acc.ID = h.ID
			acc.Trail = h.Trail
			acc.CanSplit = h.CanSplit
			w.cur.consolidated += len(idxs) - 1
			w.log.Debug("consolidate", "text", text, "count", len(idxs), "survivor", acc.ID)
		}
		merged = append(merged, acc)
	}

	w.words = merged
	w.rebuildIndices()
	w.rebuildDustPool()
}
