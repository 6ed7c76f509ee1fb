package deletetodo

import (
	"github.com/google/uuid"
)

const (
	commandType = "DeleteToDo"
)

// Command represents the intent to delete a ToDo item.
type Command struct {
	ID uuid.UUID
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(id uuid.UUID) Command {
	return Command{ID: id}
}
