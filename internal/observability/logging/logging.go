package logging

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. format "json" is what deployments
// scrape; anything else falls back to the text handler for local runs.
func NewLogger(level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
