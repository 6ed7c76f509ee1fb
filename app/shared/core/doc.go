// Package core contains the domain model of the ToDo list:
// the ToDoItem entity, the due date filters and the pure functions that decide
// how items are compared, merged and filtered.
//
// Nothing in here does I/O. The feature handlers load items through a store session,
// delegate every business decision to this package, and persist the outcome.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
