package memoryengine

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// Session is a unit of work over the in-memory ToDoStore.
type Session struct {
	store   *ToDoStore
	tracker *todostore.ChangeTracker
}

// FindByID returns the tracked item with the given ID, or nil without error if it doesn't exist.
func (s *Session) FindByID(ctx context.Context, id uuid.UUID) (*core.ToDoItem, error) {
	if item, tracked := s.tracker.Lookup(id); tracked {
		return item, nil
	}

	item, found, err := s.store.find(ctx, id)
	if err != nil || !found {
		return nil, err
	}

	return s.tracker.Attach(item), nil
}

// QueryAll returns untracked copies of all items in insertion order.
func (s *Session) QueryAll(ctx context.Context) ([]core.ToDoItem, error) {
	return s.store.all(ctx)
}

// Add registers a new item to be inserted by the next SaveChanges.
func (s *Session) Add(item core.ToDoItem) {
	s.tracker.Add(item)
}

// Remove registers an item to be deleted by the next SaveChanges.
func (s *Session) Remove(item *core.ToDoItem) {
	s.tracker.Remove(item)
}

// SaveChanges applies all pending changes atomically and returns the number of affected items.
func (s *Session) SaveChanges(ctx context.Context) (int64, error) {
	changes := s.tracker.PendingChanges()
	if len(changes) == 0 {
		return 0, nil
	}

	rowsAffected, err := s.store.apply(ctx, changes)
	if err != nil {
		return 0, err
	}

	s.tracker.AcceptChanges()

	return rowsAffected, nil
}
