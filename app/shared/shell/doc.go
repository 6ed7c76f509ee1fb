// Package shell is the imperative shell of the ToDo list application.
//
// It holds the request pipeline shared by all feature slices: the Result envelope every
// handler returns, declarative validation of requests, the Dispatcher that routes a command
// or query to its single registered handler, and the observability helpers used by the
// handler decorators in package observable.
//
// Feature packages depend on this package only through Command, Query, ToDoSession and
// Result. They never see the concrete store engine.
package shell
