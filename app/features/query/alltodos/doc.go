// Package alltodos implements the "List all ToDo items" query
// following Vertical Feature Slice architecture.
//
// Items are returned in storage order. An empty store yields an empty, non-nil list.
package alltodos
