package updatetodo

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	commandType = "UpdateToDo"
)

// Command represents the intent to overwrite the values of an existing ToDo item.
type Command struct {
	Item core.ToDoItem
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command for the item with the given ID.
// The ID always wins over the one in the payload.
func BuildCommand(id uuid.UUID, item core.ToDoItem) Command {
	item.ID = id
	item.TimeOfExpiry = core.ToTimeOfExpiry(item.TimeOfExpiry)

	return Command{Item: item}
}

// NewValidator returns the entity rules applied to the item of the command.
func NewValidator() shell.Validator[Command] {
	return shell.NewToDoItemValidator(func(c Command) core.ToDoItem {
		return c.Item
	})
}
