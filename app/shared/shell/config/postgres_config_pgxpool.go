package config

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPGXPoolConfig creates a pgxpool.Config for the DSN with the pool settings of cfg.
func PostgresPGXPoolConfig(dsn string, cfg PGConfig) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}

	dbConfig.MaxConns = cfg.MaxConns
	dbConfig.MinConns = cfg.MinConns
	dbConfig.MaxConnLifetime = cfg.MaxConnLifetime
	dbConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	dbConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	return dbConfig, nil
}

// NewPostgresPGXPool connects a pgx pool and pings the database.
func NewPostgresPGXPool(ctx context.Context, dsn string, cfg PGConfig) (*pgxpool.Pool, error) {
	dbConfig, err := PostgresPGXPoolConfig(dsn, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}
