package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/todostore"
	"github.com/AntonStoeckl/todolist-go/todostore/postgresengine/internal/adapters"
)

const (
	defaultTableName        = "todo_items"
	dialectPostgres         = "postgres"
	colID                   = "id"
	colTitle                = "title"
	colDescription          = "description"
	colTimeOfExpiry         = "time_of_expiry"
	colPercentCompleted     = "percent_completed"
	colSequenceNumber       = "sequence_number"
	uniqueViolationSQLState = "23505"
)

// ToDoStore persists ToDo items in a PostgreSQL table.
// It is safe for concurrent use, the sessions it creates are not.
type ToDoStore struct {
	db               adapters.DBAdapter
	tableName        string
	logger           todostore.Logger
	contextualLogger todostore.ContextualLogger
	metricsCollector todostore.MetricsCollector
	tracingCollector todostore.TracingCollector
}

// NewToDoStoreFromPGXPool creates a new ToDoStore using a pgx Pool with optional configuration.
func NewToDoStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (ToDoStore, error) {
	if db == nil {
		return ToDoStore{}, todostore.ErrNilDatabaseConnection
	}

	return newToDoStore(adapters.NewPGXAdapter(db), options...)
}

// NewToDoStoreFromPGXPoolAndReplica creates a new ToDoStore that reads from the replica pool
// whenever the context asks for eventual consistency.
func NewToDoStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (ToDoStore, error) {
	if db == nil || replica == nil {
		return ToDoStore{}, todostore.ErrNilDatabaseConnection
	}

	return newToDoStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewToDoStoreFromSQLDB creates a new ToDoStore using a sql.DB with optional configuration.
func NewToDoStoreFromSQLDB(db *sql.DB, options ...Option) (ToDoStore, error) {
	if db == nil {
		return ToDoStore{}, todostore.ErrNilDatabaseConnection
	}

	return newToDoStore(adapters.NewSQLAdapter(db), options...)
}

// NewToDoStoreFromSQLX creates a new ToDoStore using a sqlx.DB with optional configuration.
func NewToDoStoreFromSQLX(db *sqlx.DB, options ...Option) (ToDoStore, error) {
	if db == nil {
		return ToDoStore{}, todostore.ErrNilDatabaseConnection
	}

	return newToDoStore(adapters.NewSQLXAdapter(db), options...)
}

func newToDoStore(db adapters.DBAdapter, options ...Option) (ToDoStore, error) {
	s := ToDoStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return ToDoStore{}, err
		}
	}

	return s, nil
}

// NewSession starts a unit of work. Sessions are cheap and meant to live for one request.
func (s ToDoStore) NewSession() *Session {
	return &Session{
		store:   s,
		tracker: todostore.NewChangeTracker(),
	}
}

// queryItems runs a select with the optional id filter and returns the rows in storage order.
func (s ToDoStore) queryItems(ctx context.Context, operation string, id *uuid.UUID) ([]core.ToDoItem, error) {
	ctx, span := s.startSpan(ctx, operation)
	start := time.Now()

	sqlQuery, buildErr := s.buildSelectQuery(id)
	if buildErr != nil {
		s.logError(ctx, logMsgBuildSelectQueryFailed, buildErr)
		s.finishWithError(ctx, span, operation, errorTypeBuildQuery, time.Since(start))

		return nil, buildErr
	}

	rows, queryErr := s.db.Query(ctx, sqlQuery)
	s.logQueryWithDuration(ctx, sqlQuery, operation, time.Since(start))

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		s.finishWithError(ctx, span, operation, errorTypeDatabaseQuery, time.Since(start))

		return nil, errors.Join(todostore.ErrQueryingFailed, queryErr)
	}
	defer s.closeRows(ctx, rows)

	items, scanErr := s.scanItems(ctx, rows)
	if scanErr != nil {
		s.finishWithError(ctx, span, operation, errorTypeRowScan, time.Since(start))
		return nil, scanErr
	}

	duration := time.Since(start)
	s.logOperation(ctx, operation, logAttrItemCount, len(items), logAttrDurationMS, toMilliseconds(duration))
	s.finishWithSuccess(ctx, span, operation, duration, map[string]string{spanAttrItemCount: itoa(len(items))})

	return items, nil
}

func (s ToDoStore) scanItems(ctx context.Context, rows adapters.DBRows) ([]core.ToDoItem, error) {
	items := make([]core.ToDoItem, 0)

	for rows.Next() {
		var item core.ToDoItem
		var description sql.NullString

		if err := rows.Scan(&item.ID, &item.Title, &description, &item.TimeOfExpiry, &item.PercentCompleted); err != nil {
			s.logError(ctx, logMsgScanRowFailed, err)
			return nil, errors.Join(todostore.ErrScanningDBRowFailed, err)
		}

		if description.Valid {
			item.Description = &description.String
		}

		item.TimeOfExpiry = core.ToTimeOfExpiry(item.TimeOfExpiry)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		s.logError(ctx, logMsgScanRowFailed, err)
		return nil, errors.Join(todostore.ErrQueryingFailed, err)
	}

	return items, nil
}

func (s ToDoStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// applyChanges executes all changes in one transaction and returns the summed rows affected.
func (s ToDoStore) applyChanges(ctx context.Context, changes []todostore.Change) (int64, error) {
	ctx, span := s.startSpan(ctx, operationSaveChanges)
	start := time.Now()

	statements := make([]string, 0, len(changes))
	for _, change := range changes {
		statement, buildErr := s.buildChangeStatement(change)
		if buildErr != nil {
			s.logError(ctx, logMsgBuildChangeQueryFailed, buildErr, logAttrChangeKind, change.Kind.String())
			s.finishWithError(ctx, span, operationSaveChanges, errorTypeBuildQuery, time.Since(start))

			return 0, buildErr
		}

		statements = append(statements, statement)
	}

	tx, beginErr := s.db.BeginTx(ctx)
	if beginErr != nil {
		s.logError(ctx, logMsgBeginTxFailed, beginErr)
		s.finishWithError(ctx, span, operationSaveChanges, errorTypeTransaction, time.Since(start))

		return 0, errors.Join(todostore.ErrSavingChangesFailed, beginErr)
	}

	var rowsAffected int64

	for _, statement := range statements {
		affected, execErr := s.execInTx(ctx, tx, statement)
		if execErr != nil {
			s.rollback(ctx, tx)

			errorType := errorTypeDatabaseExec
			if errors.Is(execErr, todostore.ErrDuplicateID) {
				errorType = errorTypeDuplicateID
			}

			s.finishWithError(ctx, span, operationSaveChanges, errorType, time.Since(start))

			return 0, execErr
		}

		rowsAffected += affected
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		s.logError(ctx, logMsgCommitFailed, commitErr)
		s.finishWithError(ctx, span, operationSaveChanges, errorTypeTransaction, time.Since(start))

		return 0, errors.Join(todostore.ErrSavingChangesFailed, commitErr)
	}

	duration := time.Since(start)
	s.logOperation(ctx, operationSaveChanges,
		logAttrChangeCount, len(changes),
		logAttrRowsAffected, rowsAffected,
		logAttrDurationMS, toMilliseconds(duration))
	s.recordValue(ctx, metricRowsAffected, float64(rowsAffected), operationSaveChanges)
	s.finishWithSuccess(ctx, span, operationSaveChanges, duration, map[string]string{spanAttrRowsAffected: itoa64(rowsAffected)})

	return rowsAffected, nil
}

func (s ToDoStore) execInTx(ctx context.Context, tx adapters.DBTx, statement string) (int64, error) {
	start := time.Now()
	result, execErr := tx.Exec(ctx, statement)
	s.logQueryWithDuration(ctx, statement, operationSaveChanges, time.Since(start))

	if execErr != nil {
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, statement)

		if isUniqueViolation(execErr) {
			return 0, errors.Join(todostore.ErrDuplicateID, execErr)
		}

		return 0, errors.Join(todostore.ErrSavingChangesFailed, execErr)
	}

	affected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(todostore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return affected, nil
}

func (s ToDoStore) rollback(ctx context.Context, tx adapters.DBTx) {
	if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
		s.logWarn(ctx, logMsgRollbackFailed, logAttrError, rollbackErr.Error())
	}
}

func (s ToDoStore) buildSelectQuery(id *uuid.UUID) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colID, colTitle, colDescription, colTimeOfExpiry, colPercentCompleted).
		Order(goqu.I(colSequenceNumber).Asc())

	if id != nil {
		selectStmt = selectStmt.Where(goqu.C(colID).Eq(id.String()))
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(todostore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s ToDoStore) buildChangeStatement(change todostore.Change) (string, error) {
	builder := goqu.Dialect(dialectPostgres)
	item := change.Item

	var sqlQuery string
	var toSQLErr error

	switch change.Kind {
	case todostore.ChangeInsert:
		record := itemRecord(item)
		record[colID] = item.ID.String()
		sqlQuery, _, toSQLErr = builder.Insert(s.tableName).Rows(record).ToSQL()

	case todostore.ChangeUpdate:
		sqlQuery, _, toSQLErr = builder.Update(s.tableName).
			Set(itemRecord(item)).
			Where(goqu.C(colID).Eq(item.ID.String())).
			ToSQL()

	case todostore.ChangeDelete:
		sqlQuery, _, toSQLErr = builder.Delete(s.tableName).
			Where(goqu.C(colID).Eq(item.ID.String())).
			ToSQL()

	default:
		toSQLErr = errors.New("unsupported change kind " + change.Kind.String())
	}

	if toSQLErr != nil {
		return "", errors.Join(todostore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func itemRecord(item core.ToDoItem) goqu.Record {
	var description any
	if item.Description != nil {
		description = *item.Description
	}

	return goqu.Record{
		colTitle:            item.Title,
		colDescription:      description,
		colTimeOfExpiry:     core.ToTimeOfExpiry(item.TimeOfExpiry),
		colPercentCompleted: item.PercentCompleted,
	}
}

// isUniqueViolation recognizes primary key conflicts reported by pgx and lib/pq.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationSQLState
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationSQLState
	}

	return false
}
