// Package todobyid implements the "Get ToDo item by ID" query
// following Vertical Feature Slice architecture.
package todobyid
