package postgresengine

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// Session is a unit of work over a ToDoStore.
// Items returned by FindByID are tracked; modify them in place and call SaveChanges.
type Session struct {
	store   ToDoStore
	tracker *todostore.ChangeTracker
}

// FindByID returns the tracked item with the given ID, or nil without error if it doesn't exist.
func (s *Session) FindByID(ctx context.Context, id uuid.UUID) (*core.ToDoItem, error) {
	if item, tracked := s.tracker.Lookup(id); tracked {
		return item, nil
	}

	items, err := s.store.queryItems(ctx, operationFindByID, &id)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	return s.tracker.Attach(items[0]), nil
}

// QueryAll returns untracked copies of all stored items in storage order.
func (s *Session) QueryAll(ctx context.Context) ([]core.ToDoItem, error) {
	return s.store.queryItems(ctx, operationQueryAll, nil)
}

// Add registers a new item to be inserted by the next SaveChanges.
func (s *Session) Add(item core.ToDoItem) {
	s.tracker.Add(item)
}

// Remove registers an item to be deleted by the next SaveChanges.
func (s *Session) Remove(item *core.ToDoItem) {
	s.tracker.Remove(item)
}

// SaveChanges persists all pending changes in one transaction and returns the number of affected rows.
// Nothing is written, and 0 is returned, when there are no pending changes.
func (s *Session) SaveChanges(ctx context.Context) (int64, error) {
	changes := s.tracker.PendingChanges()
	if len(changes) == 0 {
		return 0, nil
	}

	rowsAffected, err := s.store.applyChanges(ctx, changes)
	if err != nil {
		return 0, err
	}

	s.tracker.AcceptChanges()

	return rowsAffected, nil
}
