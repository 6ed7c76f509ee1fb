package alltodos

const (
	queryType = "AllToDos"
)

// Query represents the input for listing every ToDo item. It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
