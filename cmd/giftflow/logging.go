package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger builds the run logger. Every record carries run_id so that logs of
// concurrent invocations can be told apart.
func newLogger(w io.Writer, level, format string) (*slog.Logger, string, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, "", fmt.Errorf("log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, hopts)
	case "text":
		h = slog.NewTextHandler(w, hopts)
	default:
		return nil, "", fmt.Errorf("log format %q: want text or json", format)
	}

	runID := uuid.NewString()

	return slog.New(h).With("run_id", runID), runID, nil
}
