package parameter

// World Bounds (world units, origin at center)
const (
	WorldHalfWidth  = 120.0
	WorldHalfHeight = 60.0
)

// Initial Population
const (
	// InitialWords is the number of seeding draws; repeats absorb into one word
	InitialWords = 24

	// InitialSpeedMax bounds each seeded velocity component to ±InitialSpeedMax
	InitialSpeedMax = 6.0
)

// SeedWord is one vocabulary entry for initial seeding
type SeedWord struct {
	Text string
	Mass float64
}

// SeedVocabulary is the fixed initial vocabulary
var SeedVocabulary = [...]SeedWord{
	{"thesis", 18},
	{"research", 14},
	{"graduate", 12},
	{"career", 10},
	{"talk", 9},
	{"experiment", 11},
	{"deadline", 16},
	{"advisor", 8},
	{"lecture", 6},
	{"life", 5},
	{"anxiety", 13},
	{"hope", 7},
}

// Population Gates
const (
	// MinVisibleMass is the visibility floor; words below it are skipped by gravity sourcing and snapshots
	MinVisibleMass = 0.2

	// KVisibleMin is the population floor; autogenesis runs only below it
	KVisibleMin = 40

	// KVisibleMax is the population ceiling; external adds above it arrive mostly as dust
	KVisibleMax = 400

	// AddWordCrowdedVisibleFrac is the visible share of an add at/above KVisibleMax
	AddWordCrowdedVisibleFrac = 0.25
)

// External Spawn
const (
	AddWordSpeedMin = 4.0
	AddWordSpeedMax = 10.0
)

// Word Geometry
const (
	// WordRadiusBase + WordRadiusScale*mass_total gives the collision radius
	WordRadiusBase  = 1.2
	WordRadiusScale = 0.06

	// TrailLength is the ring capacity of recorded positions per word
	TrailLength = 10

	// TextMaxDraw bounds snapshot text length in runes
	TextMaxDraw = 120
)

// JoinSeparator joins component texts on merge; split decomposes on it
const JoinSeparator = "·"

// DisplaySeparator replaces JoinSeparator in user-facing text
const DisplaySeparator = "-"
