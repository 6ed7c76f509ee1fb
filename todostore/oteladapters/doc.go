// Package oteladapters implements the todostore observability interfaces with OpenTelemetry.
//
//   - SlogBridgeLogger: log/slog through the otelslog bridge, log records carry trace and span IDs
//   - OTelLogger: emits log records through the OpenTelemetry logs API directly
//   - MetricsCollector: histograms, counters and gauges created on first use
//   - TracingCollector: spans from an OpenTelemetry tracer
//
// The providers themselves are configured by the application, see app/shared/shell/config.
package oteladapters
