// Package incomingtodos implements the "Incoming ToDo items" query
// following Vertical Feature Slice architecture.
//
// The handler loads all items and delegates the selection to the pure core.FilterByExpiry,
// which compares due dates with the current day in UTC. The clock is injectable for tests.
package incomingtodos
