package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// DetectBackend searches PATH for a raw PCM player accepting s16le stereo at rate
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay > OSS
func DetectBackend(rate int) (*BackendConfig, error) {
	return detectBackend(rate, exec.LookPath)
}

func detectBackend(rate int, lookPath func(string) (string, error)) (*BackendConfig, error) {
	r := strconv.Itoa(rate)
	ch := strconv.Itoa(parameter.AudioChannels)
	latencyMs := strconv.Itoa(int(parameter.AudioBufferDuration.Milliseconds()))

	candidates := []BackendConfig{
		{Type: BackendPulse, Name: "pacat", Args: []string{
			"--raw", "--format=s16le", "--rate=" + r, "--channels=" + ch,
			"--latency-msec=" + latencyMs, "--playback",
		}},
		{Type: BackendPipeWire, Name: "pw-cat", Args: []string{
			"--playback", "--format=s16", "--rate=" + r, "--channels=" + ch,
			"--latency=" + latencyMs + "ms", "-",
		}},
		{Type: BackendALSA, Name: "aplay", Args: []string{
			"-t", "raw", "-f", "S16_LE", "-r", r, "-c", ch, "-q",
		}},
		{Type: BackendSoX, Name: "play", Args: []string{
			"-t", "raw", "-e", "signed", "-b", "16", "-c", ch, "-r", r, "-", "-d", "-q",
		}},
		{Type: BackendFFplay, Name: "ffplay", Args: []string{
			"-nodisp", "-autoexit", "-f", "s16le", "-ac", ch, "-ar", r,
			"-probesize", "32", "-analyzeduration", "0", "-i", "pipe:0", "-loglevel", "quiet",
		}},
	}

	for _, c := range candidates {
		if path, err := lookPath(c.Name); err == nil {
			c.Path = path
			return &c, nil
		}
	}

	// FreeBSD OSS takes direct device writes
	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
