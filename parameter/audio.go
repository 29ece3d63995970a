package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8)
)

// Audio Engine Timing
const (
	// AudioBufferDuration is the mixer tick; 50ms trades latency for fewer pipe writes
	AudioBufferDuration = 50 * time.Millisecond

	AudioQueueSize = 32

	// MinCueGap drops a repeat of the same cue inside this window
	MinCueGap = 60 * time.Millisecond

	AudioMasterVolumeDefault = 0.5
)

// Merge Cue (bell)
const (
	MergeCueDuration           = 400 * time.Millisecond
	MergeCueAttack             = 5 * time.Millisecond
	MergeCueFundamentalRelease = 350 * time.Millisecond
	MergeCueOvertoneRelease    = 150 * time.Millisecond
)

// Split Cue (whoosh)
const (
	SplitCueDuration = 250 * time.Millisecond
	SplitCueAttack   = 100 * time.Millisecond
	SplitCueRelease  = 150 * time.Millisecond
)

// Absorb Cue (blip)
const (
	AbsorbCueDuration = 70 * time.Millisecond
	AbsorbCueAttack   = 3 * time.Millisecond
	AbsorbCueRelease  = 50 * time.Millisecond
)

// Sun Cue (two-note chime)
const (
	SunCueNote1Duration = 80 * time.Millisecond
	SunCueNote2Duration = 280 * time.Millisecond
	SunCueAttack        = 5 * time.Millisecond
	SunCueNote1Release  = 40 * time.Millisecond
	SunCueNote2Release  = 200 * time.Millisecond
)
