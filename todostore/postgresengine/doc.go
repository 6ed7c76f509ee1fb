// Package postgresengine stores ToDo items in PostgreSQL.
//
// A ToDoStore is created from a pgx pool, a sql.DB (lib/pq) or a sqlx.DB and hands out
// request scoped sessions. A Session tracks the items it loaded or was given, and
// SaveChanges writes all pending inserts, updates and deletes in one transaction.
//
// SQL statements are built with goqu as plain strings, reads honor the consistency level
// found in the context (a replica is only used for EventualConsistency).
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewToDoStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("todo_items"),
//		postgresengine.WithLogger(logger),
//	)
//
//	session := store.NewSession()
//	item, _ := session.FindByID(ctx, id)
//	item.PercentCompleted = 100
//	rowsAffected, err := session.SaveChanges(ctx)
package postgresengine
