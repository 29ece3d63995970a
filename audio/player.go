package audio

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// Player pipes mixed cues to a system audio tool
// Without a backend it runs in silent mode and Play reports false
type Player struct {
	config Config
	cache  *cueCache
	mixer  *Mixer
	log    *slog.Logger

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu         sync.Mutex // Protects config volumes and lastPlayed
	lastPlayed [cueCount]time.Time
	now        func() time.Time

	wg sync.WaitGroup
}

// NewPlayer creates a stopped player; a nil logger discards
func NewPlayer(cfg Config, log *slog.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	p := &Player{
		config: cfg,
		cache:  newCueCache(cfg.SampleRate),
		log:    log,
		now:    time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start launches the backend and mixer; a missing backend degrades to silent mode
func (p *Player) Start() error {
	if p.running.Load() {
		return ErrRunning
	}
	if !p.config.Enabled {
		p.enterSilent("disabled")
		return nil
	}

	backend, err := DetectBackend(p.config.SampleRate)
	if err != nil {
		p.enterSilent(err.Error())
		return nil
	}
	p.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			p.enterSilent(err.Error())
			return nil
		}
		p.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			p.enterSilent(err.Error())
			return nil
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			p.enterSilent(err.Error())
			return nil
		}
		p.cmd = cmd
		p.stdin = stdin
		writer = stdin

		p.wg.Add(1)
		go p.monitorProcess()
	}

	p.log.Info("audio backend started", "backend", backend.Name, "rate", p.config.SampleRate)
	p.startMixer(writer)
	return nil
}

// StartWriter runs the mixer against w instead of a detected backend
func (p *Player) StartWriter(w io.Writer) error {
	if p.running.Load() {
		return ErrRunning
	}
	p.startMixer(w)
	return nil
}

func (p *Player) startMixer(w io.Writer) {
	p.cache.preload()
	p.mixer = newMixer(w, p.cache)
	p.mixer.start()

	p.wg.Add(1)
	go p.monitorMixer()

	p.running.Store(true)
}

func (p *Player) enterSilent(reason string) {
	p.log.Warn("audio silent mode", "reason", reason)
	p.silentMode.Store(true)
	p.running.Store(true)
}

func (p *Player) monitorProcess() {
	defer p.wg.Done()
	if err := p.cmd.Wait(); err != nil && p.running.Load() && !p.silentMode.Load() {
		p.log.Warn("audio backend exited", "error", err)
		p.silentMode.Store(true)
	}
}

func (p *Player) monitorMixer() {
	defer p.wg.Done()
	select {
	case err := <-p.mixer.Errors():
		p.log.Warn("audio mixer stopped", "error", err)
		p.silentMode.Store(true)
	case <-p.mixer.done:
	}
}

// Stop terminates the mixer and backend; safe to call more than once
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if p.mixer != nil {
		p.mixer.stop()
	}
	if p.stdin != nil {
		p.stdin.Close()
	}
	if p.ossFile != nil {
		p.ossFile.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	if p.mixer != nil {
		p.mixer.wait()
	}
	p.wg.Wait()
}

// Play queues cue unless muted, silent or repeated within MinCueGap
func (p *Player) Play(cue Cue) bool {
	if cue < 0 || cue >= cueCount {
		return false
	}
	if !p.running.Load() || p.muted.Load() || p.silentMode.Load() || p.mixer == nil {
		return false
	}

	p.mu.Lock()
	now := p.now()
	if last := p.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.MinCueGap {
		p.mu.Unlock()
		return false
	}
	p.lastPlayed[cue] = now
	vol := p.config.volume(cue)
	p.mu.Unlock()

	return p.mixer.play(cue, vol)
}

// ToggleMute flips mute, returns true if now audible
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// IsEnabled returns true if running, unmuted and not silent
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.muted.Load() && !p.silentMode.Load()
}

func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// Backend returns the detected backend name, empty in silent mode
func (p *Player) Backend() string {
	if p.backend == nil {
		return ""
	}
	return p.backend.Name
}

// SetVolume updates master volume, clamped to [0, 1]
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.config.MasterVolume = max(0, min(1, vol))
	p.mu.Unlock()
}

// Stats returns played and dropped counts
func (p *Player) Stats() (played, dropped uint64) {
	if p.mixer == nil {
		return 0, 0
	}
	return p.mixer.Stats()
}
