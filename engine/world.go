// Package engine implements the deterministic word-gravity simulation
//
// A World owns every word, the dust pool, the optional sun and the effect pool
// It advances only through Tick, which runs the whole pipeline to completion:
//
//	spatial rebuild → gravity → integrate → collisions (queue events) →
//	apply events → consolidate duplicates → weathering → autogenesis → effects
//
// Readers observe state through Snapshot, EffectsSnapshot and Stats, which copy
// A World is not safe for concurrent use
package engine

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/physics"
	"github.com/lixenwraith/wordcosmo/vmath"
)

// Sun is the singleton radial outward force source
type Sun struct {
	Center   vmath.Vec2
	Radius   float64
	Strength float64
}

// tickCounters are diagnostics accumulated over one tick
type tickCounters struct {
	gravityCandidates   int
	collisionCandidates int
	merges              int
	splits              int
	absorbs             int
	consolidated        int
	births              int
}

// World owns all simulation state
type World struct {
	words  []Word
	events []Event

	spatial *SpatialHash
	effects *EffectPool

	sun    Sun
	hasSun bool

	// Secondary indices over words, rebuilt wholesale after structural changes
	textIndex map[string]WordID
	idIndex   map[WordID]int
	dustPool  map[string]float64

	rng    *vmath.FastRand
	nextID WordID
	log    *slog.Logger

	gravity physics.GravityProfile
	contact physics.ContactProfile

	// Per-tick scratch, reused
	neighbors []int
	acc       []vmath.Vec2
	positions []vmath.Vec2
	consumed  map[WordID]struct{}
	pending   []spawnRequest
	dustKeys  []string

	cur, last tickCounters
	gravDebug GravityDebug
	ticks     uint64
}

type options struct {
	seed         uint64
	rng          *vmath.FastRand
	logger       *slog.Logger
	initialWords int
}

// Option configures World construction
type Option func(*options)

// WithSeed seeds the world's random stream
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand injects the random stream; takes precedence over WithSeed
func WithRand(rng *vmath.FastRand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger sets the structural event logger
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInitialWords overrides the number of seeding draws; 0 yields an empty world
func WithInitialWords(n int) Option {
	return func(o *options) { o.initialWords = max(n, 0) }
}

// New creates a world seeded from the fixed vocabulary
func New(opts ...Option) *World {
	o := options{
		seed:         parameter.DefaultSeed,
		initialWords: parameter.InitialWords,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = vmath.NewFastRand(o.seed)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	w := &World{
		spatial:   NewSpatialHash(parameter.CellSize),
		effects:   NewEffectPool(parameter.EffectCapacity),
		textIndex: make(map[string]WordID),
		idIndex:   make(map[WordID]int),
		dustPool:  make(map[string]float64),
		consumed:  make(map[WordID]struct{}),
		rng:       o.rng,
		nextID:    1,
		log:       o.logger,
		gravity: physics.GravityProfile{
			G:             parameter.GravityG,
			Softening:     parameter.GravitySoftening,
			Cutoff:        parameter.GravityCutoff,
			FadeStartFrac: parameter.GravityFadeStartFrac,
			MinSourceMass: parameter.GravityMinSourceMass,
			MinDistSq:     parameter.GravityMinDistSq,
			MaxDeltaV:     parameter.GravityMaxDeltaV,
		},
		contact: physics.ContactProfile{
			Restitution: parameter.ContactRestitution,
			MinDist:     parameter.ContactMinDist,
		},
	}

	w.seedWords(o.initialWords)
	w.rebuildIndices()
	w.rebuildDustPool()
	w.log.Debug("world created", "words", len(w.words), "seed", o.seed)
	return w
}

func (w *World) seedWords(n int) {
	vocab := parameter.SeedVocabulary
	for range n {
		entry := vocab[w.rng.Intn(len(vocab))]
		pos := vmath.Vec2{
			X: w.rng.Range(-parameter.WorldHalfWidth, parameter.WorldHalfWidth),
			Y: w.rng.Range(-parameter.WorldHalfHeight, parameter.WorldHalfHeight),
		}
		vel := vmath.Vec2{
			X: w.rng.Range(-parameter.InitialSpeedMax, parameter.InitialSpeedMax),
			Y: w.rng.Range(-parameter.InitialSpeedMax, parameter.InitialSpeedMax),
		}
		w.spawnOrAbsorb(spawnRequest{
			text:        entry.Text,
			pos:         pos,
			vel:         vel,
			massVisible: entry.Mass,
		})
	}
}

// Tick advances the simulation by exactly one step of dt seconds
func (w *World) Tick(dt float64) {
	w.rebuildSpatialIndex()
	w.applyGravity(dt)
	w.integrate(dt)
	w.resolveCollisions()
	w.applyEvents()
	w.consolidateDuplicates()
	w.weather(dt)
	w.autogenesis(dt)
	w.effects.Update(dt)

	w.ticks++
	w.last = w.cur
	w.cur = tickCounters{}
}

// AddWord spawns text with random velocity, absorbing into a live word of the same text
// At or above the population ceiling most of the mass arrives as dust
// Empty text or a non-finite/non-positive mass is ignored
func (w *World) AddWord(text string, massTotal float64, pos vmath.Vec2) {
	if text == "" || !(massTotal > 0) || math.IsInf(massTotal, 0) || !vmath.V2IsFinite(pos) {
		return
	}

	visible, dust := massTotal, 0.0
	if w.visibleCount() >= parameter.KVisibleMax {
		visible = massTotal * parameter.AddWordCrowdedVisibleFrac
		dust = massTotal - visible
	}

	speed := w.rng.Range(parameter.AddWordSpeedMin, parameter.AddWordSpeedMax)
	vel := vmath.V2Scale(vmath.V2FromAngle(w.rng.Angle()), speed)

	id := w.spawnOrAbsorb(spawnRequest{
		text:        text,
		pos:         pos,
		vel:         vel,
		massVisible: visible,
		massDust:    dust,
	})
	w.log.Debug("word added", "id", id, "text", text, "mass", massTotal)
}

// SetSun creates or replaces the sun at center
func (w *World) SetSun(center vmath.Vec2) {
	w.sun = Sun{
		Center:   center,
		Radius:   parameter.SunPulseRadius,
		Strength: parameter.SunPulseStrength,
	}
	w.hasSun = true
	w.spawnEffectRing(center, parameter.SunBurstCount, '*', ColorCyan)
	w.log.Debug("sun set", "x", center.X, "y", center.Y)
}

// Sun returns the current sun, if any
func (w *World) Sun() (Sun, bool) {
	return w.sun, w.hasSun
}

// Len returns the number of live words, visible or not
func (w *World) Len() int {
	return len(w.words)
}

// Ticks returns the number of completed ticks
func (w *World) Ticks() uint64 {
	return w.ticks
}

func (w *World) visibleCount() int {
	n := 0
	for i := range w.words {
		if w.words[i].Visible() {
			n++
		}
	}
	return n
}

func (w *World) allocID() WordID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) rebuildSpatialIndex() {
	w.positions = w.positions[:0]
	for i := range w.words {
		w.positions = append(w.positions, w.words[i].Pos)
	}
	w.spatial.Rebuild(w.positions)
}

// rebuildIndices recomputes text→id and id→index from the arena
func (w *World) rebuildIndices() {
	clear(w.textIndex)
	clear(w.idIndex)
	for i := range w.words {
		w.textIndex[w.words[i].Text] = w.words[i].ID
		w.idIndex[w.words[i].ID] = i
	}
}

// rebuildDustPool recomputes the text→dust mirror from the arena
func (w *World) rebuildDustPool() {
	clear(w.dustPool)
	for i := range w.words {
		w.dustPool[w.words[i].Text] += w.words[i].MassDust
	}
}
