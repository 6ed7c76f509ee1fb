package updatepercent

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	commandType = "UpdatePercent"

	// PercentDone is the percentage of a finished item.
	PercentDone = 100
)

// Command represents the intent to change how far an item is completed.
type Command struct {
	ID               uuid.UUID
	PercentCompleted int `validate:"min=0,max=100"`
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(id uuid.UUID, percentCompleted int) Command {
	return Command{
		ID:               id,
		PercentCompleted: percentCompleted,
	}
}

// BuildDoneCommand creates a Command that completes the item.
func BuildDoneCommand(id uuid.UUID) Command {
	return BuildCommand(id, PercentDone)
}

// NewValidator returns the percent-only rules.
func NewValidator() shell.Validator[Command] {
	return shell.NewPercentValidator[Command]()
}
