// Package updatetodo implements the "Update ToDo item" use case
// following Vertical Feature Slice architecture.
//
// The handler loads the item, merges the requested values into it with core.Merge and saves.
// An empty title or a missing description in the request keeps the stored value.
// A request that doesn't change anything is answered as an idempotent success.
package updatetodo
