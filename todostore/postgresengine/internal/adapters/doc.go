// Package adapters hides the differences between pgx, database/sql and sqlx behind DBAdapter,
// so the PostgreSQL ToDo store runs on whichever connection type the application already has.
package adapters
