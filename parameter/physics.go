package parameter

// Spatial Index
const (
	// CellSize is the uniform grid cell edge in world units
	CellSize = 6.0

	// GravityCellRadius is the cell-block radius scanned for gravity sources
	// Must cover GravityCutoff: GravityCellRadius*CellSize >= GravityCutoff
	GravityCellRadius = 4

	// CollisionCellRadius scans adjacent cells only
	CollisionCellRadius = 1
)

// Gravity
const (
	GravityG = 18.0

	// GravitySoftening is added to d² in the force denominator
	GravitySoftening = 2.0

	// GravityCutoff is the distance at which the interaction weight reaches zero
	GravityCutoff = 24.0

	// GravityFadeStartFrac of the cutoff is where the smoothstep fade begins
	GravityFadeStartFrac = 0.75

	// GravityMaxDeltaV caps the per-tick velocity change from gravity
	GravityMaxDeltaV = 4.0

	// GravityMinSourceMass floors the source mass in the force numerator
	GravityMinSourceMass = 0.5

	// GravityMinDistSq skips coincident pairs
	GravityMinDistSq = 1e-6
)

// Boundary
const (
	// BounceDamp is the wall restitution, < 1
	BounceDamp = 0.9
)

// Sun Pulse
const (
	SunPulseRadius   = 32.0
	SunPulseStrength = 14.0
)
