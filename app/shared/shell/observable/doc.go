// Package observable decorates command and query handlers with metrics, tracing and logging.
//
// The wrappers are applied at wiring time, so the handlers themselves only contain the
// find, mutate and save steps of their use case:
//
//	handler, err := observable.NewCommandWrapper[createtodo.Command](
//		createtodo.NewCommandHandler(),
//		observable.WithCommandMetrics[createtodo.Command](metricsCollector),
//		observable.WithCommandTracing[createtodo.Command](tracingCollector),
//		observable.WithCommandContextualLogging[createtodo.Command](contextualLogger),
//	)
//
// A wrapper implements the same handler interface it wraps and can be registered with the
// shell.Dispatcher in place of the plain handler.
//
// The status recorded for a call is derived from its outcome: "success", "idempotent" and
// "rejected" for a returned Result, "error", "canceled" and "timeout" for a returned error.
package observable
