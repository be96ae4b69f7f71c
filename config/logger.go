package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the application logger. The returned closer releases the
// log file, if one was opened.
func NewLogger(cfg LoggingConfig) (*slog.Logger, io.Closer, error) {
	level, ok := parseLevel(cfg.Level)
	if !ok {
		return nil, nil, fmt.Errorf("config: unknown log level %q", cfg.Level)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("config: open log %s: %w", cfg.File, err)
		}
		out, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closer, nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
