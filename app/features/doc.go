// Package features registers all command and query handlers with a shell.Dispatcher.
//
// Every handler is wrapped with the observable decorators, so the configured metrics,
// tracing and logging apply uniformly to all operations.
package features
