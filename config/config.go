// Package config loads runtime options for the viewer and headless driver
// Order: defaults -> YAML file -> environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wordcosmo/audio"
	"github.com/lixenwraith/wordcosmo/logging"
	"github.com/lixenwraith/wordcosmo/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment overrides
const (
	EnvSeed         = "WORDCOSMO_SEED"
	EnvAudioEnabled = "WORDCOSMO_AUDIO_ENABLED"
	EnvMasterVolume = "WORDCOSMO_MASTER_VOLUME" // 0-100
	EnvLogLevel     = "WORDCOSMO_LOG_LEVEL"
)

// Colour modes accepted by ColorMode
const (
	ColorAuto      = "auto"
	ColorANSI      = "ansi"
	ColorTrueColor = "truecolor"
)

// Config contains all runtime settings
type Config struct {
	// Seed drives the world's random stream; identical seeds replay identically
	Seed uint64 `yaml:"seed"`

	Debug bool `yaml:"debug"`

	// ColorMode is "auto", "ansi" or "truecolor"
	ColorMode string `yaml:"color_mode"`

	Logging  LoggingConfig  `yaml:"logging"`
	Audio    AudioConfig    `yaml:"audio"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Headless HeadlessConfig `yaml:"headless"`
}

type LoggingConfig struct {
	// Level is "trace", "debug", "info", "warn" or "error"
	Level string `yaml:"level"`

	// File is the debug log path; empty uses logs/wordcosmo.log
	File string `yaml:"file,omitempty"`
}

// AudioConfig volumes are linear in [0, 1]; cue keys are merge, split, absorb, sun
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	CueVolumes   map[string]float64 `yaml:"cue_volumes,omitempty"`
}

type ViewerConfig struct {
	RenderHz  int     `yaml:"render_hz"`
	SpawnMass float64 `yaml:"spawn_mass"`
}

// HeadlessConfig drives the sim command; ReportEvery 0 reports only at the end
type HeadlessConfig struct {
	Ticks       int `yaml:"ticks"`
	ReportEvery int `yaml:"report_every"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultConfig()
	cues := make(map[string]float64, len(ac.CueVolumes))
	for c, v := range ac.CueVolumes {
		cues[c.String()] = v
	}
	return &Config{
		Seed:      parameter.DefaultSeed,
		ColorMode: ColorAuto,
		Logging: LoggingConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			CueVolumes:   cues,
		},
		Viewer: ViewerConfig{
			RenderHz:  int(parameter.RenderHz),
			SpawnMass: parameter.SpawnMassDefault,
		},
		Headless: HeadlessConfig{
			Ticks:       int(parameter.SimHz) * 60,
			ReportEvery: int(parameter.SimHz) * 5,
		},
	}
}

// Load applies the file at path, if any, then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads YAML over the defaults; absent keys keep default values
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides reports malformed values rather than silently ignoring them
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), seedBase(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudioEnabled, v, err)
		}
		cfg.Audio.Enabled = on
	}

	if v := os.Getenv(EnvMasterVolume); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMasterVolume, v, err)
		}
		cfg.Audio.MasterVolume = max(0, min(1, float64(pct)/100))
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

func seedBase(v string) int {
	if strings.HasPrefix(v, "0x") {
		return 16
	}
	return 10
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: log level %q (valid: trace, debug, info, warn, error)", ErrInvalid, c.Logging.Level)
	}

	switch c.ColorMode {
	case "", ColorAuto, ColorANSI, ColorTrueColor:
	default:
		return fmt.Errorf("%w: color_mode %q (valid: auto, ansi, truecolor)", ErrInvalid, c.ColorMode)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume must be between 0 and 1, got %f", ErrInvalid, c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.CueVolumes {
		if _, ok := audio.ParseCue(name); !ok {
			return fmt.Errorf("%w: unknown cue %q in cue_volumes", ErrInvalid, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: cue volume %s must be between 0 and 1, got %f", ErrInvalid, name, v)
		}
	}

	if c.Viewer.RenderHz < 1 || c.Viewer.RenderHz > 240 {
		return fmt.Errorf("%w: render_hz must be between 1 and 240, got %d", ErrInvalid, c.Viewer.RenderHz)
	}
	if c.Viewer.SpawnMass < parameter.SpawnMassMin || c.Viewer.SpawnMass > parameter.SpawnMassMax {
		return fmt.Errorf("%w: spawn_mass must be between %g and %g, got %g",
			ErrInvalid, parameter.SpawnMassMin, parameter.SpawnMassMax, c.Viewer.SpawnMass)
	}

	if c.Headless.Ticks < 0 {
		return fmt.Errorf("%w: ticks must be non-negative, got %d", ErrInvalid, c.Headless.Ticks)
	}
	if c.Headless.ReportEvery < 0 {
		return fmt.Errorf("%w: report_every must be non-negative, got %d", ErrInvalid, c.Headless.ReportEvery)
	}
	return nil
}

// AudioPlayerConfig converts to the player's settings; unknown cue names are skipped
func (c *Config) AudioPlayerConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.CueVolumes {
		if cue, ok := audio.ParseCue(name); ok {
			ac.CueVolumes[cue] = v
		}
	}
	return ac
}
