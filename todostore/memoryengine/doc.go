// Package memoryengine keeps ToDo items in process memory.
//
// It offers the same session semantics as postgresengine (tracked items, atomic
// SaveChanges, rows affected, ErrDuplicateID) and backs the handler and HTTP tests
// as well as STORE_DRIVER=memory for local development.
package memoryengine
