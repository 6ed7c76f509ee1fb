package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerIdempotentMetric tracks commands that didn't change anything.
	CommandHandlerIdempotentMetric = "commandhandler_idempotent_operations_total"

	// CommandHandlerRejectedMetric tracks commands answered with a failed Result.
	CommandHandlerRejectedMetric = "commandhandler_rejected_operations_total"

	// CommandHandlerCanceledMetric tracks canceled operations.
	CommandHandlerCanceledMetric = "commandhandler_canceled_operations_total"

	// CommandHandlerTimeoutMetric tracks timeout operations.
	CommandHandlerTimeoutMetric = "commandhandler_timeout_operations_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// QueryHandlerCanceledMetric tracks canceled query operations.
	QueryHandlerCanceledMetric = "queryhandler_canceled_operations_total"

	// QueryHandlerTimeoutMetric tracks timeout query operations.
	QueryHandlerTimeoutMetric = "queryhandler_timeout_operations_total"

	// StatusSuccess indicates successful completion.
	StatusSuccess = outcomeSuccess

	// StatusIdempotent indicates no state change was needed.
	StatusIdempotent = outcomeIdempotent

	// StatusRejected indicates an expected failure, e.g. an unknown ID.
	StatusRejected = outcomeRejected

	// StatusError indicates an unexpected fault.
	StatusError = "error"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing ends with a Result.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing ends with an error.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgQueryStarted is logged when query processing begins.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged when query processing ends with a Result.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing ends with an error.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrCommandType identifies the command type in logs and labels.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType identifies the query type in logs and labels.
	LogAttrQueryType = "query_type"

	// LogAttrStatus indicates the processing status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrBusinessOutcome classifies the business result.
	LogAttrBusinessOutcome = "business_outcome"

	// LogAttrReason carries the message of a failed Result.
	LogAttrReason = "reason"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameCommandHandle is the tracing span name for command handling.
	SpanNameCommandHandle = "commandhandler.handle"

	// SpanNameQueryHandle is the tracing span name for query handling.
	SpanNameQueryHandle = "queryhandler.handle"
)

// MetricsCollector records handler metrics.
type MetricsCollector = todostore.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = todostore.ContextualMetricsCollector

// TracingCollector creates handler spans.
type TracingCollector = todostore.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = todostore.SpanContext

// ContextualLogger logs with the request context.
type ContextualLogger = todostore.ContextualLogger

// Logger is the plain structured logger.
type Logger = todostore.Logger

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordCommandMetrics records duration and call count of a command, plus a dedicated
// counter for the idempotent, rejected, canceled and timeout statuses.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)
	recordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	statusMetrics := map[string]string{
		StatusIdempotent: CommandHandlerIdempotentMetric,
		StatusRejected:   CommandHandlerRejectedMetric,
		StatusCanceled:   CommandHandlerCanceledMetric,
		StatusTimeout:    CommandHandlerTimeoutMetric,
	}

	if metric, ok := statusMetrics[status]; ok {
		incrementCounter(ctx, collector, metric, BuildCommandLabels(commandType, status))
	}
}

// RecordQueryMetrics records duration and call count of a query, plus a dedicated
// counter for the canceled and timeout statuses.
func RecordQueryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, status)
	recordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)

	switch status {
	case StatusCanceled:
		incrementCounter(ctx, collector, QueryHandlerCanceledMetric, BuildQueryLabels(queryType, status))
	case StatusTimeout:
		incrementCounter(ctx, collector, QueryHandlerTimeoutMetric, BuildQueryLabels(queryType, status))
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, duration time.Duration, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	collector.RecordDuration(metric, duration, labels)
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// StartCommandSpan starts a span for a command.
// Returns the original context and a nil span if tracing is disabled.
func StartCommandSpan(ctx context.Context, tracingCollector TracingCollector, commandType string) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle, map[string]string{LogAttrCommandType: commandType})
}

// StartQuerySpan starts a span for a query.
// Returns the original context and a nil span if tracing is disabled.
func StartQuerySpan(ctx context.Context, tracingCollector TracingCollector, queryType string) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{LogAttrQueryType: queryType})
}

// FinishSpan completes a handler span with the outcome and, if present, the error.
func FinishSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogHandlerStart logs the beginning of command or query processing.
func LogHandlerStart(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	typeAttr string,
	requestType string,
) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, typeAttr, requestType)
	} else if logger != nil {
		logger.Info(msg, typeAttr, requestType)
	}
}

// LogHandlerCompleted logs the end of processing with the business outcome.
// A rejected outcome is logged at warn level together with its reason.
func LogHandlerCompleted(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	typeAttr string,
	requestType string,
	businessOutcome string,
	reason string,
	duration time.Duration,
) {
	args := []any{
		typeAttr, requestType,
		LogAttrBusinessOutcome, businessOutcome,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if businessOutcome == StatusRejected {
		args = append(args, LogAttrReason, reason)

		if contextualLogger != nil {
			contextualLogger.WarnContext(ctx, msg, args...)
		} else if logger != nil {
			logger.Warn(msg, args...)
		}

		return
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

// LogHandlerError logs a handler fault.
func LogHandlerError(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	typeAttr string,
	requestType string,
	err error,
) {
	args := []any{
		typeAttr, requestType,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Error(msg, args...)
	}
}

// ErrorStatus classifies a handler error as canceled, timeout or error.
func ErrorStatus(err error) string {
	switch {
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	default:
		return StatusError
	}
}

func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
