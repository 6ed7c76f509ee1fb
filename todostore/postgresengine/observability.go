package postgresengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildChangeQueryFailed = "failed to build change statement"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed while saving changes"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgBeginTxFailed          = "failed to begin transaction"
	logMsgCommitFailed           = "failed to commit transaction"
	logMsgRollbackFailed         = "failed to roll back transaction"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "todostore operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrItemCount             = "item_count"
	logAttrChangeCount           = "change_count"
	logAttrChangeKind            = "change_kind"
	logAttrRowsAffected          = "rows_affected"
	logAttrDurationMS            = "duration_ms"
	logAttrConsistency           = "consistency"

	operationFindByID    = "find_by_id"
	operationQueryAll    = "query_all"
	operationSaveChanges = "save_changes"

	spanNamePrefix       = "todostore."
	spanAttrOperation    = "operation"
	spanAttrErrorType    = "error_type"
	spanAttrItemCount    = "item_count"
	spanAttrRowsAffected = "rows_affected"
	spanAttrDurationMS   = "duration_ms"
	spanAttrConsistency  = "consistency"

	metricOperationDuration = "todostore_operation_duration_seconds"
	metricOperationsTotal   = "todostore_operations_total"
	metricDatabaseErrors    = "todostore_database_errors_total"
	metricRowsAffected      = "todostore_rows_affected"

	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorType = "error_type"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeBuildQuery    = "build_query"
	errorTypeDatabaseQuery = "database_query"
	errorTypeDatabaseExec  = "database_exec"
	errorTypeRowScan       = "row_scan"
	errorTypeTransaction   = "transaction"
	errorTypeDuplicateID   = "duplicate_id"
)

// startSpan starts a tracing span if the tracing collector is configured.
func (s ToDoStore) startSpan(ctx context.Context, operation string) (context.Context, todostore.SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
		spanAttrOperation:   operation,
		spanAttrConsistency: todostore.ConsistencyLevelFrom(ctx).String(),
	})
}

func (s ToDoStore) finishWithSuccess(
	ctx context.Context,
	span todostore.SpanContext,
	operation string,
	duration time.Duration,
	attrs map[string]string,
) {
	s.recordDuration(ctx, operation, statusSuccess, duration)
	s.incrementCounter(ctx, metricOperationsTotal, map[string]string{labelOperation: operation, labelStatus: statusSuccess})

	if s.tracingCollector == nil || span == nil {
		return
	}

	attrs[spanAttrDurationMS] = formatMilliseconds(duration)
	s.tracingCollector.FinishSpan(span, statusSuccess, attrs)
}

func (s ToDoStore) finishWithError(
	ctx context.Context,
	span todostore.SpanContext,
	operation string,
	errorType string,
	duration time.Duration,
) {
	s.recordDuration(ctx, operation, statusError, duration)
	s.incrementCounter(ctx, metricOperationsTotal, map[string]string{labelOperation: operation, labelStatus: statusError})
	s.incrementCounter(ctx, metricDatabaseErrors, map[string]string{
		labelOperation: operation,
		labelStatus:    statusError,
		labelErrorType: errorType,
	})

	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, statusError, map[string]string{
		spanAttrErrorType:  errorType,
		spanAttrDurationMS: formatMilliseconds(duration),
	})
}

func (s ToDoStore) recordDuration(ctx context.Context, operation, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: status}

	if contextual, ok := s.metricsCollector.(todostore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
}

func (s ToDoStore) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextual, ok := s.metricsCollector.(todostore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metric, labels)
}

func (s ToDoStore) recordValue(ctx context.Context, metric string, value float64, operation string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: statusSuccess}

	if contextual, ok := s.metricsCollector.(todostore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metric, value, labels)
}

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (s ToDoStore) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{
		logAttrDurationMS, toMilliseconds(duration),
		logAttrQuery, sqlQuery,
		logAttrConsistency, todostore.ConsistencyLevelFrom(ctx).String(),
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level.
func (s ToDoStore) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

func (s ToDoStore) logWarn(ctx context.Context, message string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, args...)
		return
	}

	if s.logger != nil {
		s.logger.Warn(message, args...)
	}
}

func (s ToDoStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func formatMilliseconds(d time.Duration) string {
	return strconv.FormatFloat(toMilliseconds(d), 'f', 2, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func itoa64(n int64) string {
	return strconv.FormatInt(n, 10)
}
