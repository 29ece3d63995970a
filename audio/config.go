package audio

import (
	"github.com/lixenwraith/wordcosmo/parameter"
)

// Config holds player settings; volumes are linear gain in [0, 1]
type Config struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   map[Cue]float64
	SampleRate   int
}

// DefaultConfig is enabled at half volume with per-cue balance
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolumeDefault,
		CueVolumes: map[Cue]float64{
			CueMerge:  0.6,
			CueSplit:  0.4,
			CueAbsorb: 0.3,
			CueSun:    0.5,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// volume returns master times cue gain, clamped; cues without an entry use master alone
func (c *Config) volume(cue Cue) float64 {
	v := c.MasterVolume
	if cv, ok := c.CueVolumes[cue]; ok {
		v *= cv
	}
	return max(0, min(1, v))
}
