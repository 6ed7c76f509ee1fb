package postgresengine

import (
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// Option defines a functional option for configuring ToDoStore.
type Option func(*ToDoStore) error

// WithTableName sets the table name for the ToDoStore.
func WithTableName(tableName string) Option {
	return func(s *ToDoStore) error {
		if tableName == "" {
			return todostore.ErrEmptyTableNameSupplied
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the ToDoStore.
//
// Debug level: SQL statements with execution timing
// Info level: item counts, rows affected, durations
// Error level: failures that make an operation fail.
func WithLogger(logger todostore.Logger) Option {
	return func(s *ToDoStore) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, which takes precedence over the plain logger
// so that log records carry the trace and span IDs of the active span.
func WithContextualLogger(logger todostore.ContextualLogger) Option {
	return func(s *ToDoStore) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the ToDoStore.
func WithMetrics(collector todostore.MetricsCollector) Option {
	return func(s *ToDoStore) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the ToDoStore.
func WithTracing(collector todostore.TracingCollector) Option {
	return func(s *ToDoStore) error {
		s.tracingCollector = collector
		return nil
	}
}
