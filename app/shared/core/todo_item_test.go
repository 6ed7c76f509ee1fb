package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
)

func Test_HasSameContent(t *testing.T) {
	due := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	current := core.ToDoItem{ID: uuid.New(), TimeOfExpiry: due, Title: "Buy milk", Description: ptr("2 litres"), PercentCompleted: 10}

	t.Run("identical values in another time zone", func(t *testing.T) {
		requested := current.Clone()
		requested.ID = uuid.New()
		requested.TimeOfExpiry = due.In(time.FixedZone("CEST", 2*60*60))

		assert.True(t, core.HasSameContent(current, requested), "items with equal values should be reported as equal")
	})

	t.Run("both descriptions nil", func(t *testing.T) {
		a := current.Clone()
		a.Description = nil
		b := a.Clone()

		assert.True(t, core.HasSameContent(a, b), "nil descriptions should be equal")
	})

	t.Run("description differs", func(t *testing.T) {
		requested := current.Clone()
		requested.Description = nil

		assert.False(t, core.HasSameContent(current, requested), "nil and non-nil descriptions should differ")
	})

	t.Run("percent differs", func(t *testing.T) {
		requested := current.Clone()
		requested.PercentCompleted = 11

		assert.False(t, core.HasSameContent(current, requested), "different percent should differ")
	})
}

func Test_Merge_KeepsTitleAndDescriptionWhenEmpty(t *testing.T) {
	// arrange
	current := core.ToDoItem{ID: uuid.New(), TimeOfExpiry: time.Now(), Title: "Old", Description: ptr("old description"), PercentCompleted: 20}
	newDue := current.TimeOfExpiry.Add(24 * time.Hour)
	requested := core.ToDoItem{ID: current.ID, TimeOfExpiry: newDue, Title: "", Description: nil, PercentCompleted: 0}

	// act
	merged := core.Merge(current, requested)

	// assert
	assert.Equal(t, "Old", merged.Title, "empty title should keep the current one")
	assert.Equal(t, "old description", *merged.Description, "nil description should keep the current one")
	assert.Equal(t, newDue, merged.TimeOfExpiry, "time of expiry should always be overwritten")
	assert.Equal(t, 0, merged.PercentCompleted, "percent should always be overwritten")
}

func Test_Merge_OverwritesAllProvidedValues(t *testing.T) {
	// arrange
	current := core.ToDoItem{ID: uuid.New(), TimeOfExpiry: time.Now(), Title: "Old", PercentCompleted: 20}
	requested := core.ToDoItem{ID: current.ID, TimeOfExpiry: current.TimeOfExpiry, Title: "New", Description: ptr("new"), PercentCompleted: 80}

	// act
	merged := core.Merge(current, requested)

	// assert
	assert.True(t, core.HasSameContent(requested, merged), "merged item should carry all requested values")
	assert.Equal(t, current.ID, merged.ID, "ID should never change")
}

func Test_ToTimeOfExpiry_NormalizesToUTCMicroseconds(t *testing.T) {
	// arrange
	local := time.Date(2025, time.May, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))

	// act
	normalized := core.ToTimeOfExpiry(local)

	// assert
	assert.Equal(t, time.UTC, normalized.Location(), "should be UTC")
	assert.Equal(t, 123456000, normalized.Nanosecond(), "should be truncated to microseconds")
	assert.True(t, local.Truncate(time.Microsecond).Equal(normalized), "should denote the same instant")
}

func ptr(s string) *string {
	return &s
}
