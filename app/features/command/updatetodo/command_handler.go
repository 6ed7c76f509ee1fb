package updatetodo

import (
	"context"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	msgNotFound     = "ToDo item not found"
	msgUpdateFailed = "Failed to update ToDoItem"
)

// CommandHandler orchestrates the workflow: FindByID → Merge → SaveChanges.
type CommandHandler struct{}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler() CommandHandler {
	return CommandHandler{}
}

// Handle loads the item and writes the merged values back.
// Saving that affects no row is reported as a failed Result.
func (h CommandHandler) Handle(ctx context.Context, session shell.ToDoSession, command Command) (shell.Result[shell.Unit], error) {
	ctx = todostore.WithStrongConsistency(ctx)

	current, err := session.FindByID(ctx, command.Item.ID)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if current == nil {
		return shell.Failure[shell.Unit](msgNotFound), nil
	}

	merged := core.Merge(*current, command.Item)
	if core.HasSameContent(*current, merged) {
		return shell.Idempotent(shell.Unit{}), nil
	}

	*current = merged

	rowsAffected, err := session.SaveChanges(ctx)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if rowsAffected == 0 {
		return shell.Failure[shell.Unit](msgUpdateFailed), nil
	}

	return shell.Success(shell.Unit{}), nil
}
