package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/village/config"
)

// Setup configures the global slog logger writing to w
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Open sets up the logger on cfg.LogFile, or discards output when none is set
// The returned close function is never nil
func Open(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return Setup(cfg, io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("failed to open log file: %w", err)
	}
	return Setup(cfg, f), f.Close, nil
}

// WithZone adds the zone id to logger context
func WithZone(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("zone", id)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
