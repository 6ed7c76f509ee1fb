package alltodos

import (
	"context"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// QueryHandler loads all items from the session.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns all items. Reading from a replica is acceptable here.
func (h QueryHandler) Handle(ctx context.Context, session shell.ToDoSession, _ Query) (shell.Result[[]core.ToDoItem], error) {
	ctx = todostore.WithEventualConsistency(ctx)

	items, err := session.QueryAll(ctx)
	if err != nil {
		return shell.Result[[]core.ToDoItem]{}, err
	}

	if items == nil {
		items = []core.ToDoItem{}
	}

	return shell.Success(items), nil
}
