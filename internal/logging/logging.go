package logging

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel represents log level constants
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// SlogLevel converts the level for slog handlers
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Config represents logger configuration
type Config struct {
	Level  LogLevel
	Format string // "json" or "text"
	Output io.Writer
}

// NewLogger creates a structured logger. Diagnostics never share the report
// sink, so Output defaults to stderr.
func NewLogger(config Config) *slog.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level.SlogLevel(),
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

// ForRun returns the logger used by a run: warnings and errors only, unless
// debug output was requested
func ForRun(debug bool, output io.Writer) *slog.Logger {
	level := LevelWarn
	if debug {
		level = LevelDebug
	}
	return NewLogger(Config{Level: level, Format: "text", Output: output})
}
