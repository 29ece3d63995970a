package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// Cue streamers are unity gain; the mixer applies configured volume

// mergeStreamer is a bell: A5 fundamental with a short octave overtone
func mergeStreamer(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, parameter.MergeCueDuration, WaveSine, rate),
		parameter.MergeCueDuration, parameter.MergeCueAttack, parameter.MergeCueFundamentalRelease, rate)
	over := NewEnvelope(NewOscillator(1760, parameter.MergeCueDuration, WaveSine, rate),
		parameter.MergeCueDuration, parameter.MergeCueAttack, parameter.MergeCueOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// splitStreamer is a white-noise whoosh
func splitStreamer(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SplitCueDuration, WaveNoise, rate)
	return NewEnvelope(noise, parameter.SplitCueDuration, parameter.SplitCueAttack, parameter.SplitCueRelease, rate)
}

// absorbStreamer is a short low square blip
func absorbStreamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(330, parameter.AbsorbCueDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, parameter.AbsorbCueDuration, parameter.AbsorbCueAttack, parameter.AbsorbCueRelease, rate), 0.5)
}

// sunStreamer is a rising two-note chime, B5 then E6
func sunStreamer(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, parameter.SunCueNote1Duration, WaveSquare, rate),
		parameter.SunCueNote1Duration, parameter.SunCueAttack, parameter.SunCueNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, parameter.SunCueNote2Duration, WaveSquare, rate),
		parameter.SunCueNote2Duration, parameter.SunCueAttack, parameter.SunCueNote2Release, rate)
	return newVolume(beep.Seq(n1, n2), 0.6)
}

// cueSamples is the rendered length of each cue
func cueSamples(cue Cue, rate beep.SampleRate) int {
	switch cue {
	case CueMerge:
		return rate.N(parameter.MergeCueDuration)
	case CueSplit:
		return rate.N(parameter.SplitCueDuration)
	case CueAbsorb:
		return rate.N(parameter.AbsorbCueDuration)
	case CueSun:
		return rate.N(parameter.SunCueNote1Duration) + rate.N(parameter.SunCueNote2Duration)
	}
	return 0
}

// CueStreamer returns a fresh unity-gain streamer for cue, nil if unknown
func CueStreamer(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueMerge:
		return mergeStreamer(rate)
	case CueSplit:
		return splitStreamer(rate)
	case CueAbsorb:
		return absorbStreamer(rate)
	case CueSun:
		return sunStreamer(rate)
	}
	return nil
}

// renderCue streams cue to a mono buffer of exactly cueSamples length
func renderCue(cue Cue, rate beep.SampleRate) floatBuffer {
	s := CueStreamer(cue, rate)
	if s == nil {
		return nil
	}
	return renderStreamer(beep.Take(cueSamples(cue, rate), s), cueSamples(cue, rate))
}

// renderStreamer drains s into at most limit mono samples
func renderStreamer(s beep.Streamer, limit int) floatBuffer {
	out := make(floatBuffer, 0, limit)
	var chunk [512][2]float64
	for len(out) < limit {
		want := min(len(chunk), limit-len(out))
		n, ok := s.Stream(chunk[:want])
		for i := range n {
			out = append(out, (chunk[i][0]+chunk[i][1])/2)
		}
		if !ok || n == 0 {
			break
		}
	}
	// Streams that end early are padded so every render has a fixed length
	for len(out) < limit {
		out = append(out, 0)
	}
	return out
}
