// Package logger builds the application's *slog.Logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger configured for the given environment, writing to
// stdout.
//
//	dev (and anything unrecognised): text, DEBUG
//	staging:                          JSON, DEBUG
//	prod:                             JSON, INFO
func New(env string) *slog.Logger {
	return newWithWriter(env, os.Stdout)
}

func newWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// NewNoop returns a logger that discards everything. Meant for tests.
func NewNoop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}
