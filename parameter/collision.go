package parameter

// Contact Resolution
const (
	// ContactRestitution scales the reversed closing speed
	ContactRestitution = 0.85

	// ContactMinDist treats closer centers as coincident and uses the fallback normal
	ContactMinDist = 1e-6

	// MassRatioFloor guards the tidal ratio denominator
	MassRatioFloor = 1e-4
)

// Structural Event Thresholds
const (
	// MergeRelSpeedMax is the post-impulse relative speed at or below which contacts merge
	MergeRelSpeedMax = 6.0

	// SplitRelSpeedMin is the relative speed at or above which both bodies split
	SplitRelSpeedMin = 14.0

	// TidalMassRatio triggers a split of both bodies regardless of speed
	TidalMassRatio = 6.0
)

// Split Fragments
const (
	SplitPartsMin = 2
	SplitPartsMax = 4

	// SplitMinMass is the total mass at or below which a word cannot split
	SplitMinMass = 1.0

	// SplitRadialSpeed is the outward ejection speed of each fragment
	SplitRadialSpeed = 8.0

	// SplitJitter bounds each fragment velocity component jitter to ±SplitJitter
	SplitJitter = 2.0

	// SplitOffsetFactor scales the source radius for fragment placement
	SplitOffsetFactor = 0.9
)
