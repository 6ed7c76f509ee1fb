package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

// QueryWrapper instruments a query handler with metrics, tracing and logging.
type QueryWrapper[Q shell.Query, R any] struct {
	coreHandler      shell.QueryHandler[Q, R]
	queryType        string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R any](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {
	if coreHandler == nil {
		return nil, shell.ErrNilHandler
	}

	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the wrapped handler and records the outcome.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, session shell.ToDoSession, query Q) (shell.Result[R], error) {
	queryStart := time.Now()
	ctx, span := shell.StartQuerySpan(ctx, w.tracingCollector, w.queryType)
	shell.LogHandlerStart(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, session, query)

	duration := time.Since(queryStart)
	if err != nil {
		status := shell.ErrorStatus(err)
		shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, duration)
		shell.FinishSpan(w.tracingCollector, span, status, duration, err)
		shell.LogHandlerError(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryFailed, shell.LogAttrQueryType, w.queryType, err)

		return result, err
	}

	outcome := result.Outcome()
	shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, outcome, duration)
	shell.FinishSpan(w.tracingCollector, span, outcome, duration, nil)
	shell.LogHandlerCompleted(
		ctx, w.logger, w.contextualLogger,
		shell.LogMsgQueryCompleted, shell.LogAttrQueryType, w.queryType,
		outcome, result.Error, duration,
	)

	return result, nil
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R any] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R any](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R any](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger for the QueryWrapper.
func WithQueryContextualLogging[Q shell.Query, R any](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R any](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}
