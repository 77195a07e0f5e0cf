/*
Package metrics exposes evaluation metrics through a Prometheus registry.
*/
package metrics

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	promExporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	api "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "github.com/shortlink-org/lazy"

type Monitoring struct {
	Prometheus *prometheus.Registry
	Metrics    *api.MeterProvider
}

// New creates a private registry and a meter provider reading into it.
func New() (*Monitoring, func(context.Context) error, error) {
	monitoring := &Monitoring{
		Prometheus: prometheus.NewRegistry(),
	}

	err := monitoring.Prometheus.Register(collectors.NewGoCollector())
	if err != nil {
		return nil, nil, err
	}

	prometheusReader, err := promExporter.New(
		promExporter.WithRegisterer(monitoring.Prometheus),
		promExporter.WithoutScopeInfo(),
		promExporter.WithoutTargetInfo(),
	)
	if err != nil {
		return nil, nil, err
	}

	monitoring.Metrics = api.NewMeterProvider(api.WithReader(prometheusReader))

	return monitoring, monitoring.Metrics.Shutdown, nil
}

// Meter returns the meter evaluation instruments are created from.
//
//nolint:ireturn // otel API
func (m *Monitoring) Meter() metric.Meter {
	return m.Metrics.Meter(meterName)
}

// Handler serves the registry in the exposition format.
func (m *Monitoring) Handler() http.Handler {
	return promhttp.HandlerFor(m.Prometheus, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// WriteText dumps metric families whose name starts with prefix in text format.
func (m *Monitoring) WriteText(w io.Writer, prefix string) error {
	families, err := m.Prometheus.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), prefix) {
			continue
		}

		if err := enc.Encode(family); err != nil {
			return err
		}
	}

	return nil
}
