package todostore

import "errors"

// ErrNilDatabaseConnection is returned when a store is constructed without a database connection.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrEmptyTableNameSupplied is returned when an empty table name is configured.
var ErrEmptyTableNameSupplied = errors.New("empty table name supplied")

// ErrBuildingQueryFailed is returned when a SQL statement can't be built.
var ErrBuildingQueryFailed = errors.New("building the query failed")

// ErrQueryingFailed is returned when reading from the database fails.
var ErrQueryingFailed = errors.New("querying todo items failed")

// ErrScanningDBRowFailed is returned when a database row can't be scanned into a ToDoItem.
var ErrScanningDBRowFailed = errors.New("scanning db row failed")

// ErrSavingChangesFailed is returned when the pending changes of a session can't be persisted.
var ErrSavingChangesFailed = errors.New("saving changes failed")

// ErrDuplicateID is returned when an item is inserted with an ID that already exists.
var ErrDuplicateID = errors.New("a todo item with this id already exists")

// ErrGettingRowsAffectedFailed is returned when the driver can't report the affected row count.
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
