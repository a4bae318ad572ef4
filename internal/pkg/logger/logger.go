// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Options selects the handler and level
type Options struct {
	Level  string
	Format string
}

// New builds a slog.Logger writing to w
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, errors.InvalidArgumentf("unsupported log format: %s", opts.Format)
	}
}

// Setup builds a logger and installs it as the slog default
func Setup(w io.Writer, opts Options) error {
	l, err := New(w, opts)
	if err != nil {
		return err
	}
	slog.SetDefault(l)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unsupported log level: %s", s)
	}
}
