package todobyid

import (
	"context"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	msgNotFound = "ToDo item not found."
)

// QueryHandler loads one item by its ID.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns the item, or a failed Result if no item has the ID.
func (h QueryHandler) Handle(ctx context.Context, session shell.ToDoSession, query Query) (shell.Result[*core.ToDoItem], error) {
	ctx = todostore.WithEventualConsistency(ctx)

	item, err := session.FindByID(ctx, query.ID)
	if err != nil {
		return shell.Result[*core.ToDoItem]{}, err
	}

	if item == nil {
		return shell.Failure[*core.ToDoItem](msgNotFound), nil
	}

	return shell.Success(item), nil
}
