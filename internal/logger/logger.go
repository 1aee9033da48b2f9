// Package logger builds the structured loggers handed to netctl components.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
	// NoColor disables ANSI colors even when writing to a terminal.
	NoColor bool
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to WARN,
// the default for an interactive client.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New creates a logger from cfg.
// The returned close function releases the log file, if one was opened.
func New(cfg Config) (*slog.Logger, func() error, error) {
	closeFn := func() error { return nil }

	var (
		w        io.Writer
		useColor bool
	)
	switch strings.ToLower(cfg.Output) {
	case "stderr", "":
		w = os.Stderr
		useColor = IsTerminal(os.Stderr.Fd())
	case "stdout":
		w = os.Stdout
		useColor = IsTerminal(os.Stdout.Fd())
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		w = f
		closeFn = f.Close
	}

	return NewWithWriter(w, cfg.Level, cfg.Format, useColor && !cfg.NoColor), closeFn, nil
}

// NewWithWriter creates a logger writing to w.
// This is primarily useful for testing.
func NewWithWriter(w io.Writer, level, format string, enableColor bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(NewColorTextHandler(w, opts, enableColor))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
