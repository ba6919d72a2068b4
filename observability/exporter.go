package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type ShutdownFunc func(ctx context.Context) error

// NewConsoleMetricsExporter installs a global meter provider that
// periodically dumps every instrument as JSON into w.
// Serves for test/dev environment.
func NewConsoleMetricsExporter(
	w io.Writer,
	interval, timeout time.Duration,
	opts ...stdoutmetric.Option,
) (ShutdownFunc, error) {
	opts = append([]stdoutmetric.Option{stdoutmetric.WithWriter(w)}, opts...)
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// NewPrometheusMetricsExporter installs a global meter provider backed
// by a prometheus collector, scraped over HTTP by the caller's handler.
func NewPrometheusMetricsExporter(opts ...prometheus.Option) (ShutdownFunc, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
