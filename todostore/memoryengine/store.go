package memoryengine

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// ToDoStore is a concurrency safe in-memory table of ToDo items.
type ToDoStore struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]core.ToDoItem
	order  []uuid.UUID
	logger todostore.Logger
}

// Option defines a functional option for configuring ToDoStore.
type Option func(*ToDoStore)

// WithLogger sets a logger that receives a summary of every saved change set.
func WithLogger(logger todostore.Logger) Option {
	return func(s *ToDoStore) {
		s.logger = logger
	}
}

// NewToDoStore returns an empty store.
func NewToDoStore(options ...Option) *ToDoStore {
	s := &ToDoStore{items: make(map[uuid.UUID]core.ToDoItem)}

	for _, option := range options {
		option(s)
	}

	return s
}

// NewSession starts a unit of work.
func (s *ToDoStore) NewSession() *Session {
	return &Session{store: s, tracker: todostore.NewChangeTracker()}
}

// Seed stores items directly, bypassing sessions. Existing IDs are overwritten.
func (s *ToDoStore) Seed(items ...core.ToDoItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if _, exists := s.items[item.ID]; !exists {
			s.order = append(s.order, item.ID)
		}

		s.items[item.ID] = item.Clone()
	}
}

// Count returns the number of stored items.
func (s *ToDoStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *ToDoStore) find(ctx context.Context, id uuid.UUID) (core.ToDoItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return core.ToDoItem{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]

	return item.Clone(), ok, nil
}

func (s *ToDoStore) all(ctx context.Context) ([]core.ToDoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]core.ToDoItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id].Clone())
	}

	return items, nil
}

// apply validates the whole change set first, so that a duplicate ID leaves the store untouched.
func (s *ToDoStore) apply(ctx context.Context, changes []todostore.Change) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserting := make(map[uuid.UUID]struct{})
	for _, change := range changes {
		if change.Kind != todostore.ChangeInsert {
			continue
		}

		_, stored := s.items[change.Item.ID]
		_, seen := inserting[change.Item.ID]

		if stored || seen {
			return 0, todostore.ErrDuplicateID
		}

		inserting[change.Item.ID] = struct{}{}
	}

	var rowsAffected int64

	for _, change := range changes {
		id := change.Item.ID

		switch change.Kind {
		case todostore.ChangeInsert:
			s.items[id] = change.Item.Clone()
			s.order = append(s.order, id)
			rowsAffected++

		case todostore.ChangeUpdate:
			if _, ok := s.items[id]; ok {
				s.items[id] = change.Item.Clone()
				rowsAffected++
			}

		case todostore.ChangeDelete:
			if _, ok := s.items[id]; ok {
				delete(s.items, id)
				s.removeFromOrder(id)
				rowsAffected++
			}
		}
	}

	if s.logger != nil {
		s.logger.Debug("memory store saved changes", "change_count", len(changes), "rows_affected", rowsAffected)
	}

	return rowsAffected, nil
}

func (s *ToDoStore) removeFromOrder(id uuid.UUID) {
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
