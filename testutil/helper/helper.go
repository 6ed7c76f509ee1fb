// Package helper contains test data builders and session doubles shared by the feature
// and HTTP tests.
package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore/memoryengine"
)

// FixedNow is the clock value used by tests that depend on the current day.
var FixedNow = time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)

func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenItem builds a valid item with a fresh ID, due at the given time.
func GivenItem(t testing.TB, title string, timeOfExpiry time.Time) core.ToDoItem {
	t.Helper()

	return core.ToDoItem{
		ID:           GivenUniqueID(t),
		TimeOfExpiry: core.ToTimeOfExpiry(timeOfExpiry),
		Title:        title,
	}
}

// GivenStoreWith returns an in-memory store seeded with the items.
func GivenStoreWith(items ...core.ToDoItem) *memoryengine.ToDoStore {
	store := memoryengine.NewToDoStore()
	store.Seed(items...)

	return store
}

// FindStored loads an item through a fresh session, failing the test on a store error.
func FindStored(t testing.TB, store *memoryengine.ToDoStore, id uuid.UUID) *core.ToDoItem {
	t.Helper()

	item, err := store.NewSession().FindByID(context.Background(), id)
	require.NoError(t, err, "error in asserting stored data")

	return item
}

func StringPtr(s string) *string {
	return &s
}

// ZeroRowsSession behaves like the wrapped session, but its SaveChanges reports that
// no row was affected, without writing anything.
type ZeroRowsSession struct {
	shell.ToDoSession
}

func (s ZeroRowsSession) SaveChanges(context.Context) (int64, error) {
	return 0, nil
}
