package shell

import (
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
)

// Client facing validation messages, keyed by "Field.tag".
const (
	MsgPercentOutOfRange = "Percent must be between 0 and 100"
	MsgTitleRequired     = "You have to add the title"
	MsgTitleTooLong      = "Title cannot be longer than 100 characters"
	MsgDateRequired      = "Date cannot be empty"
)

var toDoItemMessages = map[string]string{
	"PercentCompleted.min":  MsgPercentOutOfRange,
	"PercentCompleted.max":  MsgPercentOutOfRange,
	"Title.required":        MsgTitleRequired,
	"Title.notblank":        MsgTitleRequired,
	"Title.max":             MsgTitleTooLong,
	"TimeOfExpiry.required": MsgDateRequired,
}

// NewToDoItemValidator validates the ToDoItem a request carries against the entity rules.
func NewToDoItemValidator[R any](item func(R) core.ToDoItem) StructValidator[R] {
	return NewStructValidator(toDoItemMessages, func(request R) any {
		return item(request)
	})
}

// NewPercentValidator validates a request struct that has a tagged PercentCompleted field.
func NewPercentValidator[R any]() StructValidator[R] {
	return NewStructValidator[R](toDoItemMessages, nil)
}
