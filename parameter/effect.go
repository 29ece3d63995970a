package parameter

// Effect Pool
const (
	EffectCapacity = 512

	// EffectTTL is the lifetime of one particle in seconds
	EffectTTL = 0.6

	EffectSpeedMin = 4.0
	EffectSpeedMax = 10.0
)

// Effect Bursts (particle counts)
const (
	SunBurstCount    = 10
	MergeBurstCount  = 8
	SplitBurstCount  = 12
	AbsorbBurstCount = 6
)
