package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupMetricsTest installs a manual-reader meter provider for the test.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		_ = provider.Shutdown(context.Background())
	})

	return reader
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestRecordRun(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordRun(ctx, "solo", 120, 7, 3*time.Millisecond, nil)
	m.RecordRun(ctx, "solo", 30, 2, time.Millisecond, errors.New("boom"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	runs := findMetric(&rm, "lvroute.search.runs")
	require.NotNil(t, runs)
	sum, ok := runs.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	states := findMetric(&rm, "lvroute.search.states")
	require.NotNil(t, states)
	stateSum := states.Data.(metricdata.Sum[int64])
	total = 0
	for _, dp := range stateSum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(150), total)

	require.NotNil(t, findMetric(&rm, "lvroute.search.latency_ms"))
}

func TestNewMetricsRecorder_NotNoop(t *testing.T) {
	setupMetricsTest(t)

	rec := NewMetricsRecorder()
	_, isNoop := rec.(NoopMetrics)
	assert.False(t, isNoop)
}

func TestSpanManager_RecordsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})

	sm := NewSpanManager()
	ctx, run := sm.StartRunSpan(context.Background(), "duo", "run-1")
	_, phase := sm.StartPhaseSpan(ctx, "explore")
	sm.AddSpanEvent(ctx, "frontier", attribute.Int("size", 3))
	sm.EndSpanWithError(phase, errors.New("cut short"))
	sm.EndSpanWithError(run, nil)

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "lvroute.phase.explore", spans[0].Name)
	assert.Equal(t, "lvroute.run", spans[1].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	require.Len(t, spans[1].Events, 1)
}

func TestNoop(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	m.RecordRun(context.Background(), "solo", 1, 1, time.Second, nil)

	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()
	got, span := sm.StartRunSpan(ctx, "solo", "x")
	assert.Equal(t, ctx, got)
	sm.EndSpanWithError(span, nil)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	EnrichLogger(logger, "run-9", "solo", "AA").Debug("hello")
	assert.Contains(t, buf.String(), `"run_id":"run-9"`)
	assert.Contains(t, buf.String(), `"mode":"solo"`)

	_, err = NewLogger(&buf, "loud", "json")
	require.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	require.Error(t, err)
}

func TestLogHelpers_NilLogger(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "a", "b", "c"))
	LogRunStart(nil, 1, 1)
	LogRunComplete(nil, 1, 1, 1, time.Second)
	LogRunError(nil, errors.New("x"))
}

func TestSetupStdout(t *testing.T) {
	origT, origM := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(origT)
		otel.SetMeterProvider(origM)
	})

	var buf bytes.Buffer
	shutdown, err := SetupStdout(&buf)
	require.NoError(t, err)

	sm := NewSpanManager()
	_, span := sm.StartRunSpan(context.Background(), "solo", "run-2")
	sm.EndSpanWithError(span, nil)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "lvroute.run")
}
