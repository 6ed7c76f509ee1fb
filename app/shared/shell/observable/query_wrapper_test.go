package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/observable"
	. "github.com/AntonStoeckl/todolist-go/testutil/observability/testdoubles" //nolint:revive
)

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{result: shell.Success([]string{"a", "b"})},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryTracing[mockQuery, []string](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), nil, mockQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Value)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithLabel("query_type", "TestQuery").
		WithStatus("success").
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithLabel("query_type", "TestQuery").
		Assert())
	assert.True(t, tracingCollector.HasFinishedSpan(shell.SpanNameQueryHandle, "success"))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Rejected(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{result: shell.Failure[[]string]("ToDo item not found.")},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), nil, mockQuery{})

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus("rejected").
		Assert())
	assert.True(t, contextualLogger.HasWarnLog(shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Error(t *testing.T) {
	// arrange
	handlerErr := errors.New("querying failed")
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{err: handlerErr},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryTracing[mockQuery, []string](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](contextualLogger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), nil, mockQuery{})

	// assert
	assert.ErrorIs(t, err, handlerErr)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus("error").
		Assert())
	assert.True(t, tracingCollector.HasFinishedSpan(shell.SpanNameQueryHandle, "error"))
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

func Test_QueryWrapper_Handle_Canceled(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy(true)
	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{err: context.Canceled},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), nil, mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCanceledMetric).
		WithLabel("query_type", "TestQuery").
		Assert())
}

type mockQuery struct{}

func (mockQuery) QueryType() string {
	return "TestQuery"
}

type mockQueryHandler struct {
	result shell.Result[[]string]
	err    error
}

func (h mockQueryHandler) Handle(_ context.Context, _ shell.ToDoSession, _ mockQuery) (shell.Result[[]string], error) {
	return h.result, h.err
}
