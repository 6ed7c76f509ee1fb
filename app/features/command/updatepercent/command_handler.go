package updatepercent

import (
	"context"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	msgNotFound     = "ToDoItem not found."
	msgUpdateFailed = "Failed to update percent."
)

// CommandHandler orchestrates the workflow: FindByID → set percent → SaveChanges.
type CommandHandler struct{}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler() CommandHandler {
	return CommandHandler{}
}

// Handle sets the new percentage. An unchanged percentage is an idempotent success.
func (h CommandHandler) Handle(ctx context.Context, session shell.ToDoSession, command Command) (shell.Result[shell.Unit], error) {
	ctx = todostore.WithStrongConsistency(ctx)

	item, err := session.FindByID(ctx, command.ID)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if item == nil {
		return shell.Failure[shell.Unit](msgNotFound), nil
	}

	if item.PercentCompleted == command.PercentCompleted {
		return shell.Idempotent(shell.Unit{}), nil
	}

	item.PercentCompleted = command.PercentCompleted

	rowsAffected, err := session.SaveChanges(ctx)
	if err != nil {
		return shell.Result[shell.Unit]{}, err
	}

	if rowsAffected == 0 {
		return shell.Failure[shell.Unit](msgUpdateFailed), nil
	}

	return shell.Success(shell.Unit{}), nil
}
