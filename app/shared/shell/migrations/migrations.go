package migrations

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

const (
	driverName = "pgx"
	dialect    = "postgres"
	dir        = "sql"
)

//go:embed sql/*.sql
var embedded embed.FS

// Up applies all pending migrations to the database behind dsn.
func Up(ctx context.Context, dsn string) error {
	db, err := goose.OpenDBWithDriver(driverName, dsn)
	if err != nil {
		return fmt.Errorf("migrations open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(embedded)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrations set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}

	return nil
}

// Files lists the embedded migration files in apply order.
func Files() ([]string, error) {
	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}
