// Package deletetodo implements the "Delete ToDo item" use case
// following Vertical Feature Slice architecture.
package deletetodo
