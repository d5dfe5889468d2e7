package config

import (
	"io"
	"log/slog"
)

// NewLogger returns the text logger installed by the binaries.
// Debug enables per-frame and lifecycle diagnostics.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
