package postgresengine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/testutil/observability/testdoubles"
	"github.com/AntonStoeckl/todolist-go/todostore"
	"github.com/AntonStoeckl/todolist-go/todostore/postgresengine"
)

func Test_ToDoStore_Observability_QueryAllSuccess(t *testing.T) {
	// arrange
	db, mock := givenMockDB(t)
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	tracing := testdoubles.NewTracingCollectorSpy(true)
	logger := testdoubles.NewContextualLoggerSpy(true)

	store, err := postgresengine.NewToDoStoreFromSQLDB(
		db,
		postgresengine.WithMetrics(metrics),
		postgresengine.WithTracing(tracing),
		postgresengine.WithContextualLogger(logger),
	)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "todo_items"`).WillReturnRows(sqlmock.NewRows(itemColumns))

	// act
	_, queryErr := store.NewSession().QueryAll(todostore.WithEventualConsistency(context.Background()))

	// assert
	require.NoError(t, queryErr)
	assert.True(t, metrics.HasDurationRecordForMetric("todostore_operation_duration_seconds").
		WithOperation("query_all").
		WithStatus("success").
		Assert(), "should record the query duration")
	assert.True(t, metrics.HasCounterRecordForMetric("todostore_operations_total").
		WithOperation("query_all").
		WithStatus("success").
		Assert(), "should count the query")
	assert.True(t, tracing.HasFinishedSpan("todostore.query_all", "success"), "should finish the span with success")
	assert.True(t, logger.HasDebugLog("executed sql for: query_all"), "should log the SQL at debug level")
	assert.True(t, logger.HasInfoLog("todostore operation: query_all"), "should log the operation summary")

	consistency, found := logger.ArgValue("executed sql for: query_all", "consistency")
	assert.True(t, found, "should log the consistency level")
	assert.Equal(t, "eventual", consistency)
}

func Test_ToDoStore_Observability_QueryFailure(t *testing.T) {
	// arrange
	db, mock := givenMockDB(t)
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	tracing := testdoubles.NewTracingCollectorSpy(true)
	logger := testdoubles.NewContextualLoggerSpy(true)

	store, err := postgresengine.NewToDoStoreFromSQLDB(
		db,
		postgresengine.WithMetrics(metrics),
		postgresengine.WithTracing(tracing),
		postgresengine.WithLogger(logger),
	)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "todo_items"`).WillReturnError(errors.New("boom"))

	// act
	_, queryErr := store.NewSession().QueryAll(context.Background())

	// assert
	require.Error(t, queryErr)
	assert.True(t, metrics.HasCounterRecordForMetric("todostore_database_errors_total").
		WithOperation("query_all").
		WithErrorType("database_query").
		Assert(), "should count the database error")
	assert.True(t, tracing.HasFinishedSpan("todostore.query_all", "error"), "should finish the span with error")
	assert.True(t, logger.HasErrorLog("database query execution failed"), "should log the failure")
}

func Test_ToDoStore_Observability_SaveChangesRecordsRowsAffected(t *testing.T) {
	// arrange
	db, mock := givenMockDB(t)
	metrics := testdoubles.NewMetricsCollectorSpy(true)

	store, err := postgresengine.NewToDoStoreFromSQLDB(db, postgresengine.WithMetrics(metrics))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "todo_items"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	session := store.NewSession()
	session.Add(givenItem())

	// act
	_, saveErr := session.SaveChanges(context.Background())

	// assert
	require.NoError(t, saveErr)
	require.Len(t, metrics.GetValueRecords(), 1, "one value should be recorded")
	assert.Equal(t, "todostore_rows_affected", metrics.GetValueRecords()[0].Metric)
	assert.InDelta(t, 1.0, metrics.GetValueRecords()[0].Value, 0.0001)
}
