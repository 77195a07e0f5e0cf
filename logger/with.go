package logger

import (
	"log/slog"
	"maps"
	"slices"
)

// WithFields creates a new logger with pre-set fields
func (log *SlogLogger) WithFields(fields ...slog.Attr) *SlogLogger {
	if len(fields) == 0 {
		return log
	}

	args := make([]any, 0, len(fields))
	for _, field := range fields {
		args = append(args, field)
	}

	return &SlogLogger{logger: log.logger.With(args...)}
}

// WithError creates a new logger with error field
func (log *SlogLogger) WithError(err error) *SlogLogger {
	if err == nil {
		return log
	}

	return log.WithFields(slog.String("error", err.Error()))
}

// WithTags creates a new logger with multiple tags, ordered by key
func (log *SlogLogger) WithTags(tags map[string]string) *SlogLogger {
	fields := make([]slog.Attr, 0, len(tags))

	for _, k := range slices.Sorted(maps.Keys(tags)) {
		if k != "" && tags[k] != "" {
			fields = append(fields, slog.String(k, tags[k]))
		}
	}

	return log.WithFields(fields...)
}
