package logger

import (
	"context"
	"io"
	"log/slog"
)

// Logger is what config, tracing and evaltrace log through. The
// *WithContext variants correlate the record with the span in ctx.
type Logger interface {
	Error(msg string, fields ...slog.Attr)
	Warn(msg string, fields ...slog.Attr)
	Info(msg string, fields ...slog.Attr)
	Debug(msg string, fields ...slog.Attr)

	ErrorWithContext(ctx context.Context, msg string, fields ...slog.Attr)
	WarnWithContext(ctx context.Context, msg string, fields ...slog.Attr)
	InfoWithContext(ctx context.Context, msg string, fields ...slog.Attr)
	DebugWithContext(ctx context.Context, msg string, fields ...slog.Attr)

	io.Closer
}

var _ Logger = (*SlogLogger)(nil)
