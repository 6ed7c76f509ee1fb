// Package config loads the runtime configuration from the environment and builds the
// infrastructure it describes: PostgreSQL connections for each supported driver
// (pgx.Pool, sql.DB, sqlx.DB), the OpenTelemetry providers and the application logger.
//
// This package is part of the shell (infrastructure) layer.
package config
