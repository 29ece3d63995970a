package audio

import (
	"errors"
)

// Cue identifies a simulation sound cue
type Cue int

const (
	CueMerge  Cue = iota // Two words fused
	CueSplit             // A word broke apart
	CueAbsorb            // A spawn fed an existing word
	CueSun               // Sun placed
	cueCount
)

var cueNames = [cueCount]string{
	CueMerge:  "merge",
	CueSplit:  "split",
	CueAbsorb: "absorb",
	CueSun:    "sun",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue resolves a cue by its lowercase name
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Cues lists every cue in declaration order
func Cues() []Cue {
	out := make([]Cue, cueCount)
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrRunning        = errors.New("audio player already running")
)
