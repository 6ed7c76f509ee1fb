package adapters

import (
	"context"
	"database/sql"
)

// stdRows wraps sql.Rows, used by both the sql.DB and the sqlx.DB adapter.
type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdTx wraps sql.Tx. The context is only used for statements, database/sql binds
// commit and rollback to the context given to BeginTx.
type stdTx struct {
	tx *sql.Tx
}

func (s *stdTx) Exec(ctx context.Context, query string) (DBResult, error) {
	return s.tx.ExecContext(ctx, query)
}

func (s *stdTx) Commit(_ context.Context) error {
	return s.tx.Commit()
}

func (s *stdTx) Rollback(_ context.Context) error {
	return s.tx.Rollback()
}
