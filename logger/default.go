package logger

import (
	"context"
	"io"
	"time"

	"github.com/shortlink-org/lazy/config"
)

// NewDefault creates a logger writing to w, leveled by LOG_LEVEL and
// LOG_TIME_FORMAT. A nil w means stdout.
//
//nolint:ireturn // callers work with the interface
func NewDefault(_ context.Context, cfg *config.Config, w io.Writer) (Logger, func(), error) {
	cfg.SetDefault("LOG_LEVEL", INFO_LEVEL)
	cfg.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	conf := Configuration{
		Level:      cfg.GetInt("LOG_LEVEL"),
		TimeFormat: cfg.GetString("LOG_TIME_FORMAT"),
		Writer:     w,
	}

	log, err := New(conf)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Close() //nolint:errcheck // ignore
	}

	return log, cleanup, nil
}
