// Package logutil builds the slog loggers used across memberfmt.
package logutil

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent is above every standard level and suppresses all records.
const LevelSilent = slog.Level(100)

// NewLogger creates a text logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromString converts a level name. Supports debug, info, warn and
// error (case-insensitive); anything else is warn.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Level resolves the effective level. Precedence: quiet, verbose, the
// flag value, then the configured value.
func Level(configured, flag string, quiet, verbose bool) slog.Level {
	switch {
	case quiet:
		return LevelSilent
	case verbose:
		return slog.LevelDebug
	case flag != "":
		return LevelFromString(flag)
	default:
		return LevelFromString(configured)
	}
}
