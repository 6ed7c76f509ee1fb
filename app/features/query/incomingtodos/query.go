package incomingtodos

import (
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	queryType = "IncomingToDos"

	msgUnknownFilter = "Unknown date filter"
)

// Query represents the input for listing items due within a period relative to today.
type Query struct {
	Filter core.DateFilter `validate:"min=0,max=4"`
}

// BuildQuery creates a new Query with the provided filter.
func BuildQuery(filter core.DateFilter) Query {
	return Query{Filter: filter}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// NewValidator rejects filter values outside the known range.
func NewValidator() shell.Validator[Query] {
	return shell.NewStructValidator[Query](
		map[string]string{
			"Filter.min": msgUnknownFilter,
			"Filter.max": msgUnknownFilter,
		},
		nil,
	)
}
