package createtodo

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

const (
	msgAlreadyExists = "ToDo item already exists"
)

// CommandHandler adds the new item and saves it.
type CommandHandler struct{}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler() CommandHandler {
	return CommandHandler{}
}

// Handle executes the workflow: Add → SaveChanges.
func (h CommandHandler) Handle(ctx context.Context, session shell.ToDoSession, command Command) (shell.Result[shell.Unit], error) {
	ctx = todostore.WithStrongConsistency(ctx)

	session.Add(command.Item)

	if _, err := session.SaveChanges(ctx); err != nil {
		if errors.Is(err, todostore.ErrDuplicateID) {
			return shell.Failure[shell.Unit](msgAlreadyExists), nil
		}

		return shell.Result[shell.Unit]{}, err
	}

	return shell.Success(shell.Unit{}), nil
}
