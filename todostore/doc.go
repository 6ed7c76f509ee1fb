// Package todostore defines the storage contracts shared by the ToDo store engines.
//
// It contains the sentinel errors every engine returns, the dependency-free observability
// interfaces (Logger, ContextualLogger, MetricsCollector, TracingCollector), the
// consistency level carried through the context, and the ChangeTracker that turns the
// modifications made to loaded items into pending inserts, updates and deletes.
//
// Engines live in the sub packages:
//   - postgresengine: PostgreSQL via pgx, database/sql or sqlx
//   - memoryengine: a process local map, used by tests and for local development
//   - oteladapters: OpenTelemetry implementations of the observability interfaces
package todostore
