package logger

import (
	"context"
	"log/slog"

	"github.com/shortlink-org/lazy/logger/tracer"
)

// SlogLogger writes JSON records through log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

func New(cfg Configuration) (*SlogLogger, error) {
	// Check config and set default values if needed
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
		Level: convertLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(cfg.TimeFormat))
			}

			return a
		},
	})

	return &SlogLogger{logger: slog.New(handler)}, nil
}

func (log *SlogLogger) Close() error {
	// slog.Logger holds no resources
	return nil
}

// convertLevel converts our log level to slog level
func convertLevel(level int) slog.Level {
	switch level {
	case ERROR_LEVEL:
		return slog.LevelError
	case WARN_LEVEL:
		return slog.LevelWarn
	case INFO_LEVEL:
		return slog.LevelInfo
	case DEBUG_LEVEL:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func (log *SlogLogger) log(level slog.Level, msg string, fields ...slog.Attr) {
	log.logger.LogAttrs(context.Background(), level, msg, fields...)
}

func (log *SlogLogger) logWithContext(ctx context.Context, level slog.Level, msg string, fields ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}

	if !log.logger.Enabled(ctx, level) {
		return
	}

	fields, err := tracer.NewTraceFromContext(ctx, level.String(), msg, nil, fields...)
	if err != nil {
		log.logger.LogAttrs(ctx, slog.LevelError, "error sending span to OpenTelemetry", slog.Any("err", err))
	}

	log.logger.LogAttrs(ctx, level, msg, fields...)
}
