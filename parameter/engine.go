package parameter

import (
	"time"
)

// Simulation Timing
const (
	// SimHz is the fixed simulation tick rate
	SimHz = 60.0

	// DT is the fixed step in seconds fed to World.Tick
	DT = 1.0 / SimHz

	// SimStep is DT as a duration for wall-clock accumulation
	SimStep = time.Second / time.Duration(SimHz)

	// MaxStepsPerFrame caps ticks drained per driver frame; leftover time is discarded
	MaxStepsPerFrame = 8
)

// Render Timing
const (
	// RenderHz is the default viewer redraw rate
	RenderHz = 30.0

	// InputPollBudget is the max terminal events handled per frame
	InputPollBudget = 100
)

// DefaultSeed drives New() when no seed option is given
const DefaultSeed uint64 = 0x5eed_c05a0
