package core

import (
	"time"

	"github.com/google/uuid"
)

// TitleMaxLength is the maximum number of characters a title may have.
const TitleMaxLength = 100

// ToDoItem is the only entity of the domain.
// The ID is supplied by the caller and never changes after creation.
type ToDoItem struct {
	ID               uuid.UUID `json:"id"`
	TimeOfExpiry     time.Time `json:"timeOfExpiry" validate:"required"`
	Title            string    `json:"title" validate:"required,notblank,max=100"`
	Description      *string   `json:"description"`
	PercentCompleted int       `json:"percentCompleted" validate:"min=0,max=100"`
}

// ToTimeOfExpiry converts a time to the stored representation: UTC with microsecond precision,
// which is what PostgreSQL keeps for a timestamptz.
func ToTimeOfExpiry(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// HasSameContent reports whether two items carry identical field values, ignoring the ID.
func HasSameContent(current ToDoItem, requested ToDoItem) bool {
	return current.TimeOfExpiry.Equal(requested.TimeOfExpiry) &&
		current.Title == requested.Title &&
		sameDescription(current.Description, requested.Description) &&
		current.PercentCompleted == requested.PercentCompleted
}

// Merge applies the requested field values to the current item.
//
// An empty Title or a nil Description in the request keeps the current value.
// TimeOfExpiry and PercentCompleted are always overwritten.
func Merge(current ToDoItem, requested ToDoItem) ToDoItem {
	merged := current
	merged.TimeOfExpiry = requested.TimeOfExpiry
	merged.PercentCompleted = requested.PercentCompleted

	if requested.Title != "" {
		merged.Title = requested.Title
	}

	if requested.Description != nil {
		description := *requested.Description
		merged.Description = &description
	}

	return merged
}

// Clone returns a deep copy of the item so that the Description pointer is not shared.
func (i ToDoItem) Clone() ToDoItem {
	clone := i
	if i.Description != nil {
		description := *i.Description
		clone.Description = &description
	}

	return clone
}

func sameDescription(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
