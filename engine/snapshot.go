package engine

import (
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// WordSnapshot is a read-only copy of one visible word
type WordSnapshot struct {
	ID        WordID
	Text      string // Truncated to TextMaxDraw runes
	Truncated bool

	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	MassVisible float64
	MassDust    float64
	MassTotal   float64

	// Raw trail slots; walk back from TrailHead for TrailLen entries
	Trail     [parameter.TrailLength]vmath.Vec2
	TrailHead int
	TrailLen  int
}

// Stats aggregates world counters; candidate averages and event counts cover the last tick
type Stats struct {
	Ticks uint64

	Visible    int
	DustBodies int // Identities holding dust
	Total      int

	MassVisible float64
	MassTotal   float64

	GravityCandidatesAvg   float64
	CollisionCandidatesAvg float64

	Merges       int
	Splits       int
	Absorbs      int
	Consolidated int
	Births       int

	EffectsLive int
	HasSun      bool

	Gravity GravityDebug
}

// Snapshot appends a copy of every visible word to out[:0]
func (w *World) Snapshot(out []WordSnapshot) []WordSnapshot {
	out = out[:0]
	for i := range w.words {
		wd := &w.words[i]
		if !wd.Visible() {
			continue
		}
		text, cut := truncateRunes(wd.Text, parameter.TextMaxDraw)
		s := WordSnapshot{
			ID:          wd.ID,
			Text:        text,
			Truncated:   cut,
			Pos:         wd.Pos,
			Vel:         wd.Vel,
			Radius:      wd.Radius,
			MassVisible: wd.MassVisible,
			MassDust:    wd.MassDust,
			MassTotal:   wd.MassTotal,
		}
		s.TrailHead, s.TrailLen = wd.Trail.CopyRaw(s.Trail[:])
		out = append(out, s)
	}
	return out
}

// EffectsSnapshot appends every live effect to out[:0]
func (w *World) EffectsSnapshot(out []Effect) []Effect {
	return w.effects.AppendTo(out[:0])
}

// Stats reports aggregate counters
func (w *World) Stats() Stats {
	s := Stats{
		Ticks:        w.ticks,
		Total:        len(w.words),
		Merges:       w.last.merges,
		Splits:       w.last.splits,
		Absorbs:      w.last.absorbs,
		Consolidated: w.last.consolidated,
		Births:       w.last.births,
		EffectsLive:  w.effects.Len(),
		HasSun:       w.hasSun,
		Gravity:      w.gravDebug,
	}
	for i := range w.words {
		wd := &w.words[i]
		if wd.Visible() {
			s.Visible++
		}
		s.MassVisible += wd.MassVisible
		s.MassTotal += wd.MassTotal
	}
	for _, dust := range w.dustPool {
		if dust > 0 {
			s.DustBodies++
		}
	}
	if n := len(w.words); n > 0 {
		s.GravityCandidatesAvg = float64(w.last.gravityCandidates) / float64(n)
		s.CollisionCandidatesAvg = float64(w.last.collisionCandidates) / float64(n)
	}
	return s
}

func truncateRunes(s string, limit int) (string, bool) {
	n := 0
	for i := range s {
		if n == limit {
			return s[:i], true
		}
		n++
	}
	return s, false
}
