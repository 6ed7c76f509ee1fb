// Package createtodo implements the "Create ToDo item" use case
// following Vertical Feature Slice architecture.
//
// The item is validated by the dispatcher against the entity rules before the handler runs,
// so the handler only adds it to the session and saves. An ID that already exists is
// reported by the store and answered with a failed Result.
package createtodo
