// Package httpapi exposes the ToDo operations over HTTP with gin.
//
// Endpoints translate path, query and body input into commands and queries, send them through
// the shell.Dispatcher and translate the returned Result into a response:
//
//	failure                   -> 400 with the error message as plain text
//	success with a value      -> 200 with the value as JSON
//	success without a value   -> 404 for lookups, 200 with an empty body for commands
//
// Faults are attached to the gin context with c.Error and turned into responses by the
// ErrorTranslation middleware, which answers validation failures with 400 and everything else with 500.
//
// The router also serves /health, /metrics (Prometheus) and applies CORS.
package httpapi
