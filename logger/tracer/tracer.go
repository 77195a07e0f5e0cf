/*
Package tracer correlates log records with OpenTelemetry spans.
*/
package tracer

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/shortlink-org/lazy/logger"

	severityError = "ERROR"
	severityWarn  = "WARN"
)

// NewTraceFromContext records a log line on the span carried by ctx.
//
// With an active span the record becomes a "log.<LEVEL>" event and ERROR
// marks the span as failed. Without one, WARN and ERROR records open a short
// span of their own; lower levels are returned untouched. Whenever a span is
// involved, traceID and spanID are appended to fields.
func NewTraceFromContext(
	ctx context.Context, //nolint:contextcheck // ctx may be nil
	level string,
	msg string,
	tags []attribute.KeyValue,
	fields ...slog.Attr,
) ([]slog.Attr, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	level = strings.ToUpper(level)
	attrs := append(logAttributes(level, msg, fields...), tags...)
	isError := level == severityError || hasErrorFlag(fields)

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() && span.IsRecording() {
		span.AddEvent("log."+level, trace.WithAttributes(attrs...))

		if isError {
			span.SetStatus(codes.Error, msg)
		}

		return withCorrelation(fields, span.SpanContext()), nil
	}

	if level != severityError && level != severityWarn {
		return fields, nil
	}

	_, span = otel.Tracer(tracerName).Start(ctx, "log."+strings.ToLower(level))
	defer span.End()

	span.SetAttributes(attrs...)

	if isError {
		span.SetStatus(codes.Error, msg)
	}

	return withCorrelation(fields, span.SpanContext()), nil
}

func withCorrelation(fields []slog.Attr, sc trace.SpanContext) []slog.Attr {
	out := make([]slog.Attr, 0, len(fields)+2)
	out = append(out, fields...)
	out = append(out,
		slog.String("traceID", sc.TraceID().String()),
		slog.String("spanID", sc.SpanID().String()),
	)

	return out
}

func logAttributes(level, msg string, fields ...slog.Attr) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("log.severity", level),
		attribute.String("log.message", msg),
	}

	for _, field := range fields {
		switch field.Key {
		case "err", "error":
			if errMsg, errType, ok := errorOf(field.Value); ok {
				attrs = append(attrs,
					attribute.String("exception.message", errMsg),
					attribute.String("exception.type", errType),
				)

				continue
			}
		case "is_error":
			attrs = append(attrs, attribute.Bool("log.is_error", isTrue(field.Value)))

			continue
		}

		attrs = append(attrs, FieldToOpenTelemetry(field))
	}

	return attrs
}

// FieldToOpenTelemetry converts one slog attribute to an OpenTelemetry attribute.
func FieldToOpenTelemetry(field slog.Attr) attribute.KeyValue {
	value := field.Value.Resolve()

	switch value.Kind() {
	case slog.KindString:
		return attribute.String(field.Key, value.String())
	case slog.KindBool:
		return attribute.Bool(field.Key, value.Bool())
	case slog.KindInt64:
		return attribute.Int64(field.Key, value.Int64())
	case slog.KindUint64:
		return attribute.Int64(field.Key, int64(value.Uint64())) //nolint:gosec // overflow is acceptable for display
	case slog.KindFloat64:
		return attribute.Float64(field.Key, value.Float64())
	case slog.KindDuration:
		return attribute.String(field.Key, value.Duration().String())
	default:
		return attribute.String(field.Key, fmt.Sprint(value.Any()))
	}
}

func errorOf(v slog.Value) (string, string, bool) {
	v = v.Resolve()

	if v.Kind() == slog.KindString {
		return v.String(), "string", true
	}

	err, ok := v.Any().(error)
	if !ok || err == nil {
		return "", "", false
	}

	return err.Error(), reflect.TypeOf(err).String(), true
}

func hasErrorFlag(fields []slog.Attr) bool {
	for _, field := range fields {
		if field.Key == "is_error" && isTrue(field.Value) {
			return true
		}
	}

	return false
}

func isTrue(v slog.Value) bool {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindBool:
		return v.Bool()
	case slog.KindString:
		return strings.EqualFold(v.String(), "true")
	default:
		return false
	}
}
