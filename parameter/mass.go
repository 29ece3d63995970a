package parameter

// Mass Exchange (fractions per second)
const (
	// WeatheringRate moves visible mass to dust
	WeatheringRate = 0.02

	// AutogenesisRate moves dust back to visible mass while under KVisibleMin
	AutogenesisRate = 0.08

	// AutogenesisSpeedMax bounds each velocity component of words born from dust
	AutogenesisSpeedMax = 4.0
)
