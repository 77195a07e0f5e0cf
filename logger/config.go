package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Log levels, from the quietest to the most verbose.
//
//nolint:revive,stylecheck // exported names kept for config compatibility
const (
	ERROR_LEVEL = iota
	WARN_LEVEL
	INFO_LEVEL
	DEBUG_LEVEL
)

// Configuration describes a logger instance.
type Configuration struct {
	Writer     io.Writer
	TimeFormat string
	Level      int
}

// Default returns an INFO logger writing to stdout.
func Default() Configuration {
	return Configuration{
		Level:      INFO_LEVEL,
		Writer:     os.Stdout,
		TimeFormat: time.RFC3339Nano,
	}
}

// Validate checks the level and fills empty fields with defaults.
func (c *Configuration) Validate() error {
	if c.Level < ERROR_LEVEL || c.Level > DEBUG_LEVEL {
		return fmt.Errorf("%w: %d", ErrInvalidLogLevel, c.Level)
	}

	if c.Writer == nil {
		c.Writer = os.Stdout
	}

	if c.TimeFormat == "" {
		c.TimeFormat = time.RFC3339Nano
	}

	return nil
}
