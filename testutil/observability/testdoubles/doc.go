// Package testdoubles provides spies for the todostore observability interfaces.
//
// The spies record every call so tests can assert on emitted metrics, spans and log messages:
//
//	metrics := testdoubles.NewMetricsCollectorSpy(true)
//	// ... exercise the code under test ...
//	assert.True(t, metrics.HasCounterRecordForMetric("commandhandler_handle_calls_total").WithStatus("success").Assert())
package testdoubles
