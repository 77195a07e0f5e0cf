/*
Tracing wrapping
*/
package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	traceProvider "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/shortlink-org/lazy/config"
	"github.com/shortlink-org/lazy/logger"
)

// Config describes where spans are exported.
type Config struct {
	ServiceName    string
	ServiceVersion string
	URI            string
}

// New returns a TracerProvider exporting over OTLP/gRPC, or a no-op provider
// when TRACER_URI is empty.
//
//nolint:ireturn // callers work with the interface
func New(ctx context.Context, log logger.Logger, cfg *config.Config) (traceProvider.TracerProvider, func(), error) {
	cfg.SetDefault("SERVICE_NAME", "lazy")
	cfg.SetDefault("SERVICE_VERSION", "dev")

	conf := Config{
		ServiceName:    cfg.GetString("SERVICE_NAME"),
		ServiceVersion: cfg.GetString("SERVICE_VERSION"),
		URI:            cfg.GetString("TRACER_URI"),
	}

	if conf.URI == "" {
		return noop.NewTracerProvider(), func() {}, nil
	}

	tp, err := Init(ctx, conf, log, cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		errShutdown := tp.Shutdown(context.WithoutCancel(ctx))
		if errShutdown != nil {
			log.Error("Tracing disable",
				slog.String("uri", conf.URI),
				slog.Any("err", errShutdown),
			)
		}
	}

	return tp, cleanup, nil
}

// Init builds the SDK provider and installs it globally.
func Init(ctx context.Context, cnf Config, log logger.Logger, cfg *config.Config) (*trace.TracerProvider, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", cnf.ServiceName),
		attribute.String("service.version", cnf.ServiceVersion),
	)

	tp, err := newTraceProvider(ctx, res, cnf.URI, cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Tracing enable",
		slog.String("uri", cnf.URI),
	)

	return tp, nil
}

func newTraceProvider(ctx context.Context, res *resource.Resource, uri string, cfg *config.Config) (*trace.TracerProvider, error) {
	cfg.SetDefault("TRACING_INITIAL_INTERVAL", "2s")
	cfg.SetDefault("TRACING_MAX_INTERVAL", "30s")
	cfg.SetDefault("TRACING_MAX_ELAPSED_TIME", "1m")

	initialInterval := cfg.GetDuration("TRACING_INITIAL_INTERVAL")

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(uri),
		otlptracegrpc.WithRetry(otlptracegrpc.RetryConfig{
			Enabled:         true,
			InitialInterval: initialInterval,
			MaxInterval:     cfg.GetDuration("TRACING_MAX_INTERVAL"),
			MaxElapsedTime:  cfg.GetDuration("TRACING_MAX_ELAPSED_TIME"),
		}),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter, trace.WithBatchTimeout(initialInterval)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return tp, nil
}
