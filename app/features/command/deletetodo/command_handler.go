package deletetodo

import (
	"context"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	msgNotFound     = "ToDo item not found"
	msgDeleteFailed = "Failed to delete the ToDo"
)

// CommandHandler orchestrates the workflow: FindByID → Remove → SaveChanges.
type CommandHandler struct{}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler() CommandHandler {
	return CommandHandler{}
}

// Handle removes the item. Deleting an unknown ID is a failed Result.
func (h CommandHandler) Handle(ctx context.Context, session shell.ToDoSession, command Command) (shell.Result[shell.Unit], error) {
	ctx = todostore.WithStrongConsistency(ctx)

	item, err := session.FindByID(ctx, command.ID)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if item == nil {
		return shell.Failure[shell.Unit](msgNotFound), nil
	}

	session.Remove(item)

	rowsAffected, err := session.SaveChanges(ctx)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if rowsAffected == 0 {
		return shell.Failure[shell.Unit](msgDeleteFailed), nil
	}

	return shell.Success(shell.Unit{}), nil
}
