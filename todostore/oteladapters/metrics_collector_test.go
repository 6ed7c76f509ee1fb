package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/todolist-go/todostore/oteladapters"
)

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := map[string]string{"operation": "query_all", "status": "success"}

	// act
	collector.RecordDuration("todostore_operation_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "todostore_operation_duration_seconds")
	require.Len(t, histogram.DataPoints, 1, "expected exactly one data point")
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001, "duration should be recorded in seconds")

	expectedAttrs := attribute.NewSet(attribute.String("operation", "query_all"), attribute.String("status", "success"))
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expectedAttrs), "attributes should match the labels")
}

func Test_MetricsCollector_IncrementCounterContext(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := map[string]string{"status": "success"}

	// act
	collector.IncrementCounterContext(context.Background(), "todo_requests_total", labels)
	collector.IncrementCounter("todo_requests_total", labels)
	collector.IncrementCounter("todo_requests_total", labels)

	// assert
	counter := findCounterMetric(t, collect(t, reader), "todo_requests_total")
	require.Len(t, counter.DataPoints, 1, "same labels should share a data point")
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()

	// act
	collector.RecordValue("todostore_rows_affected", 2, map[string]string{"operation": "save_changes"})
	collector.RecordValueContext(context.Background(), "todostore_rows_affected", 5, map[string]string{"operation": "save_changes"})

	// assert
	gauge := findGaugeMetric(t, collect(t, reader), "todostore_rows_affected")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 5.0, gauge.DataPoints[0].Value, 0.0001, "gauge should keep the last value")
}

func Test_MetricsCollector_ConcurrentUse(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("todo_concurrent_total", nil)
		}()
	}
	wg.Wait()

	// assert
	counter := findCounterMetric(t, collect(t, reader), "todo_concurrent_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(20), counter.DataPoints[0].Value, "no increment should be lost")
}

func givenMetricsCollector() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return reader, oteladapters.NewMetricsCollector(provider.Meter("test"))
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics), "collecting metrics should succeed")

	return resourceMetrics
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Histogram[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if h, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == name {
				return h
			}
		}
	}

	t.Fatalf("histogram metric %s not found", name)

	return metricdata.Histogram[float64]{}
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if c, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
				return c
			}
		}
	}

	t.Fatalf("counter metric %s not found", name)

	return metricdata.Sum[int64]{}
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Gauge[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if g, ok := m.Data.(metricdata.Gauge[float64]); ok && m.Name == name {
				return g
			}
		}
	}

	t.Fatalf("gauge metric %s not found", name)

	return metricdata.Gauge[float64]{}
}
