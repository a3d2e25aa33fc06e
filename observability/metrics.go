package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRun records one explorer run with its state counts and duration.
	RecordRun(ctx context.Context, mode string, states, recorded int, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	runs     metric.Int64Counter
	states   metric.Int64Counter
	recorded metric.Int64Counter
	latency  metric.Float64Histogram
}

// newOtelMetrics creates instruments on the global meter provider.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("lvroute")

	runs, err := meter.Int64Counter("lvroute.search.runs",
		metric.WithDescription("Number of explorer runs"),
	)
	if err != nil {
		return nil, err
	}

	states, err := meter.Int64Counter("lvroute.search.states",
		metric.WithDescription("Search states popped from the work list"),
	)
	if err != nil {
		return nil, err
	}

	recorded, err := meter.Int64Counter("lvroute.search.recorded",
		metric.WithDescription("States accepted by the frontier"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("lvroute.search.latency_ms",
		metric.WithDescription("Explorer run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{runs: runs, states: states, recorded: recorded, latency: latency}, nil
}

// NewMetricsRecorder returns a MetricsRecorder bound to the global OTel meter
// provider. Configure the provider first:
//
//	otel.SetMeterProvider(yourProvider)
//
// If instrument creation fails a no-op recorder is returned.
func NewMetricsRecorder() MetricsRecorder {
	m, err := newOtelMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRun records one run.
func (m *otelMetrics) RecordRun(ctx context.Context, mode string, states, recorded int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("success", err == nil),
	)
	m.runs.Add(ctx, 1, attrs)
	m.states.Add(ctx, int64(states), attrs)
	m.recorded.Add(ctx, int64(recorded), attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}
