/*
Package evaltrace instruments suspended computations.

A Tracker counts how many suspensions actually ran, which is the observable
difference between strict and lazy evaluation. Every run is wrapped in an
OpenTelemetry span and logged; metric instruments are optional.
*/
package evaltrace

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/shortlink-org/lazy/logger"
)

const (
	tracerName = "github.com/shortlink-org/lazy/evaltrace"
	spanName   = "thunk.eval"
)

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Evaluations int64
	Failures    int64
}

// Tracker records evaluations. The zero value is not usable; use New.
type Tracker struct {
	log    logger.Logger
	tracer trace.Tracer

	evaluations atomic.Int64
	failures    atomic.Int64

	evalCounter metric.Int64Counter
	failCounter metric.Int64Counter
	duration    metric.Float64Histogram
}

type Option func(*Tracker)

// WithTracerProvider selects the provider spans are started from.
// The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(t *Tracker) {
		t.tracer = tp.Tracer(tracerName)
	}
}

// WithMeter records counters and a duration histogram on meter. Instrument
// names use underscores so exposition names are the same under every
// Prometheus name translation.
func WithMeter(meter metric.Meter) Option {
	return func(t *Tracker) {
		var err error

		t.evalCounter, err = meter.Int64Counter("thunk_evaluations",
			metric.WithDescription("Suspended computations that ran"))
		if err != nil {
			t.log.Warn("evaltrace: counter disabled", slog.Any("err", err))
		}

		t.failCounter, err = meter.Int64Counter("thunk_failures",
			metric.WithDescription("Suspended computations that returned an error"))
		if err != nil {
			t.log.Warn("evaltrace: counter disabled", slog.Any("err", err))
		}

		t.duration, err = meter.Float64Histogram("thunk_eval_duration",
			metric.WithUnit("s"),
			metric.WithDescription("Time spent inside suspended computations"))
		if err != nil {
			t.log.Warn("evaltrace: histogram disabled", slog.Any("err", err))
		}
	}
}

// New creates a Tracker logging to log. Spans go to the global tracer
// provider unless WithTracerProvider is given.
func New(log logger.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		log:    log,
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats {
	if t == nil {
		return Stats{}
	}

	return Stats{
		Evaluations: t.evaluations.Load(),
		Failures:    t.failures.Load(),
	}
}

// Wrap instruments fn under name with root spans. A nil tracker returns fn
// unchanged.
func Wrap[T any](t *Tracker, name string, fn func() (T, error)) func() (T, error) {
	return WrapContext(context.Background(), t, name, fn)
}

// WrapContext is Wrap with spans parented on ctx.
func WrapContext[T any](ctx context.Context, t *Tracker, name string, fn func() (T, error)) func() (T, error) {
	if t == nil {
		return fn
	}

	return func() (T, error) {
		spanCtx, span := t.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("thunk.name", name)))
		defer span.End()

		start := time.Now()
		v, err := fn()
		t.record(spanCtx, span, name, time.Since(start), err)

		return v, err
	}
}

func (t *Tracker) record(ctx context.Context, span trace.Span, name string, took time.Duration, err error) {
	t.evaluations.Inc()

	attrs := metric.WithAttributes(attribute.String("thunk", name))

	if t.evalCounter != nil {
		t.evalCounter.Add(ctx, 1, attrs)
	}

	if t.duration != nil {
		t.duration.Record(ctx, took.Seconds(), attrs)
	}

	if err != nil {
		t.failures.Inc()

		if t.failCounter != nil {
			t.failCounter.Add(ctx, 1, attrs)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		t.log.WarnWithContext(ctx, "thunk evaluation failed",
			slog.String("thunk", name),
			slog.Duration("duration", took),
			slog.Any("err", err),
		)

		return
	}

	t.log.DebugWithContext(ctx, "thunk evaluated",
		slog.String("thunk", name),
		slog.Duration("duration", took),
	)
}
