package todobyid

import (
	"github.com/google/uuid"
)

const (
	queryType = "ToDoByID"
)

// Query represents the input for loading a single ToDo item.
type Query struct {
	ID uuid.UUID
}

// BuildQuery creates a new Query for the given ID.
func BuildQuery(id uuid.UUID) Query {
	return Query{ID: id}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
