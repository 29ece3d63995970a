package parameter

// Viewer Layout (terminal cells)
const (
	HeaderRows = 4
	FooterRows = 2

	// CameraFollowAlpha is the per-frame lerp factor toward the focused word
	CameraFollowAlpha = 0.2

	CameraZoom = 1.0
)

// Text Entry
const (
	InputMaxRunes = 32

	SpawnMassDefault = 10.0
	SpawnMassMin     = 1.0
	SpawnMassMax     = 100.0
	SpawnMassStep    = 1.0

	// SunCommand typed into the input line places the sun at the camera
	SunCommand = "sun"
)

// Word Colour Classification
const (
	// ColorDustRatio is the dust/total ratio above which a word renders gray
	ColorDustRatio = 0.6

	// ColorFastSpeed marks fast words cyan
	ColorFastSpeed = 14.0

	ColorHeavyMass  = 20.0 // Yellow above
	ColorMediumMass = 10.0 // Magenta above
	ColorLightMass  = 6.0  // Blue above
)

// Trail Rendering
const (
	// TrailFreshAge is the age fraction below which the bright trail glyph is used
	TrailFreshAge = 0.4

	// TrailMassFactor scales a word's visible mass into its trail draw priority
	TrailMassFactor = 0.3

	TrailGlyphFresh = '·'
	TrailGlyphOld   = '.'

	// EffectDrawPriority outranks any word in the frame buffer
	EffectDrawPriority = 1e9
)
