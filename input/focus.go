package input

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/wordcosmo/engine"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// Candidate is the heaviest visible word carrying one component
type Candidate struct {
	Component string
	ID        engine.WordID
	Mass      float64
	Pos       vmath.Vec2
}

// Focus cycles over word components and follows a component through merges
type Focus struct {
	candidates []Candidate
	best       map[string]int
	idx        int
	active     bool
	component  string
	id         engine.WordID
}

// Sync rebuilds candidates from a snapshot and re-resolves the focused word
// Focus follows its component into whatever word now carries it, then falls back to the word ID
func (f *Focus) Sync(words []engine.WordSnapshot) {
	if f.best == nil {
		f.best = make(map[string]int)
	}
	clear(f.best)
	f.candidates = f.candidates[:0]

	for i := range words {
		ws := &words[i]
		for _, comp := range engine.Components(ws.Text) {
			c := Candidate{Component: comp, ID: ws.ID, Mass: ws.MassVisible, Pos: ws.Pos}
			j, ok := f.best[comp]
			if !ok {
				f.best[comp] = len(f.candidates)
				f.candidates = append(f.candidates, c)
				continue
			}
			cur := &f.candidates[j]
			if c.Mass > cur.Mass || (c.Mass == cur.Mass && c.ID < cur.ID) {
				*cur = c
			}
		}
	}

	slices.SortFunc(f.candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Mass, a.Mass); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.Component, b.Component)
	})

	if !f.active {
		return
	}
	for i := range f.candidates {
		if f.candidates[i].Component == f.component {
			f.idx, f.id = i, f.candidates[i].ID
			return
		}
	}
	for i := range f.candidates {
		if f.candidates[i].ID == f.id {
			f.idx, f.component = i, f.candidates[i].Component
			return
		}
	}
	f.Clear()
}

// Next advances to the next candidate, wrapping; the first call picks the heaviest
func (f *Focus) Next() {
	if len(f.candidates) == 0 {
		f.Clear()
		return
	}
	if f.active {
		f.idx = (f.idx + 1) % len(f.candidates)
	} else {
		f.idx = 0
		f.active = true
	}
	c := &f.candidates[f.idx]
	f.component, f.id = c.Component, c.ID
}

func (f *Focus) Clear() {
	f.active = false
	f.idx = 0
	f.component = ""
	f.id = 0
}

// ID returns the focused word, 0 when none
func (f *Focus) ID() engine.WordID {
	if !f.active {
		return 0
	}
	return f.id
}

// Component returns the focused component, empty when none
func (f *Focus) Component() string {
	return f.component
}

// Target returns the focused word's position as of the last Sync
func (f *Focus) Target() (vmath.Vec2, bool) {
	if !f.active || f.idx >= len(f.candidates) {
		return vmath.Vec2{}, false
	}
	return f.candidates[f.idx].Pos, true
}

// Candidates returns the current ordering; valid until the next Sync
func (f *Focus) Candidates() []Candidate {
	return f.candidates
}
