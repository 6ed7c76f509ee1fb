package createtodo

import (
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	commandType = "CreateToDo"
)

// Command represents the intent to create a new ToDo item with a caller supplied ID.
type Command struct {
	Item core.ToDoItem
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command, normalizing the time of expiry to its stored form.
func BuildCommand(item core.ToDoItem) Command {
	item.TimeOfExpiry = core.ToTimeOfExpiry(item.TimeOfExpiry)

	return Command{Item: item}
}

// NewValidator returns the entity rules applied to the item of the command.
func NewValidator() shell.Validator[Command] {
	return shell.NewToDoItemValidator(func(c Command) core.ToDoItem {
		return c.Item
	})
}
