package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shortlink-org/lazy/config"
	"github.com/shortlink-org/lazy/logger"
	"github.com/shortlink-org/lazy/observability/evaltrace"
	"github.com/shortlink-org/lazy/observability/metrics"
	"github.com/shortlink-org/lazy/observability/tracing"
	"github.com/shortlink-org/lazy/types/deferred"
)

// Runtime is the shared state of one command invocation.
type Runtime struct {
	Log      logger.Logger
	Config   *config.Config
	Settings Settings
	Tracker  *evaltrace.Tracker

	monitoring *deferred.Object[*metrics.Monitoring]
	cleanup    []func()
}

func newRuntime(ctx context.Context, cmd *cobra.Command, opts *RootOptions) (*Runtime, error) {
	bootstrap, err := logger.New(logger.Configuration{
		Level:  logger.WARN_LEVEL,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(bootstrap)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		cfg.Set("LOG_LEVEL", logger.DEBUG_LEVEL)
	}

	log, logCleanup, err := logger.NewDefault(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Log:      log,
		Config:   cfg,
		Settings: LoadSettings(cfg),
		cleanup:  []func(){logCleanup},
	}

	tp, tracingCleanup, err := tracing.New(ctx, log, cfg)
	if err != nil {
		rt.Close()

		return nil, err
	}

	rt.cleanup = append(rt.cleanup, tracingCleanup)

	trackerOpts := []evaltrace.Option{evaltrace.WithTracerProvider(tp)}

	rt.monitoring = deferred.Of(func() (*metrics.Monitoring, error) {
		monitoring, shutdown, errMetrics := metrics.New()
		if errMetrics != nil {
			return nil, errMetrics
		}

		rt.cleanup = append(rt.cleanup, func() {
			if errShutdown := shutdown(context.WithoutCancel(ctx)); errShutdown != nil {
				log.Warn("metrics shutdown", slog.Any("err", errShutdown))
			}
		})

		return monitoring, nil
	})

	if opts.Metrics {
		monitoring, errMetrics := rt.monitoring.Get()
		if errMetrics != nil {
			rt.Close()

			return nil, errMetrics
		}

		trackerOpts = append(trackerOpts, evaltrace.WithMeter(monitoring.Meter()))
	}

	rt.Tracker = evaltrace.New(log, trackerOpts...)

	return rt, nil
}

// Monitoring returns the metrics registry, creating it on first use.
func (rt *Runtime) Monitoring() (*metrics.Monitoring, error) {
	return rt.monitoring.Get()
}

// Close releases resources in reverse order of acquisition.
func (rt *Runtime) Close() {
	for i := len(rt.cleanup) - 1; i >= 0; i-- {
		rt.cleanup[i]()
	}

	rt.cleanup = nil
}
