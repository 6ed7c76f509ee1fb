package adapters

import "context"

// DBAdapter runs plain SQL strings against the database.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	BeginTx(ctx context.Context) (DBTx, error)
}

// DBTx is an open transaction that only executes statements.
type DBTx interface {
	Exec(ctx context.Context, query string) (DBResult, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
