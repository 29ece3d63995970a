// Package logging provides the leveled slog logger used by the viewer and headless driver
// The terminal owns stdout while the viewer runs, so debug logs go to a file and are discarded otherwise
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelTrace sits below Debug for per-tick detail
const LevelTrace = slog.LevelDebug - 4

// Default log file location relative to the working directory
const (
	DefaultDir      = "logs"
	DefaultFileName = "wordcosmo.log"
)

// ParseLevel maps a level name to a slog.Level, case-insensitive
// Supported: "trace", "debug", "info", "warn", "error"; unknown values default to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a known level; empty is valid and means info
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// NewLogger creates a leveled text logger writing to w
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup returns a file-backed logger in debug mode and a discarding one otherwise
// An empty path uses DefaultDir/DefaultFileName; the returned file is nil when discarding
func Setup(debug bool, level, path string) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	if path == "" {
		path = filepath.Join(DefaultDir, DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	// Debug mode never logs above debug level
	if ParseLevel(level) > slog.LevelDebug {
		level = "debug"
	}
	return NewLogger(level, f), f, nil
}
