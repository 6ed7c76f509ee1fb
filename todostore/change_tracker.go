package todostore

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
)

// ChangeKind is the kind of statement a pending change results in.
type ChangeKind int

const (
	// ChangeInsert is an item added to the session.
	ChangeInsert ChangeKind = iota + 1
	// ChangeUpdate is a loaded item whose values were modified.
	ChangeUpdate
	// ChangeDelete is a loaded item that was removed.
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeUpdate:
		return "update"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change is one pending modification with the values to persist.
type Change struct {
	Kind ChangeKind
	Item core.ToDoItem
}

type entryState int

const (
	stateUnchanged entryState = iota
	stateAdded
	stateRemoved
)

type trackedEntry struct {
	item     *core.ToDoItem
	snapshot core.ToDoItem
	state    entryState
}

// ChangeTracker keeps the items a session handed out, together with a snapshot of their
// values at load time. Callers modify the items in place and the tracker derives the
// pending changes by comparing them with the snapshots.
//
// A ChangeTracker belongs to a single session and is not safe for concurrent use.
type ChangeTracker struct {
	entries map[uuid.UUID]*trackedEntry
	order   []uuid.UUID
}

// NewChangeTracker returns an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{entries: make(map[uuid.UUID]*trackedEntry)}
}

// Lookup returns the tracked item for the ID.
// The second return value tells whether the ID is tracked at all; a tracked but removed
// item is reported as (nil, true) so that the caller does not load it again.
func (t *ChangeTracker) Lookup(id uuid.UUID) (*core.ToDoItem, bool) {
	entry, ok := t.entries[id]
	if !ok {
		return nil, false
	}

	if entry.state == stateRemoved {
		return nil, true
	}

	return entry.item, true
}

// Attach starts tracking an item loaded from the store and returns the instance callers may modify.
func (t *ChangeTracker) Attach(loaded core.ToDoItem) *core.ToDoItem {
	if item, ok := t.Lookup(loaded.ID); ok {
		return item
	}

	item := loaded.Clone()
	t.track(&trackedEntry{item: &item, snapshot: loaded.Clone(), state: stateUnchanged})

	return &item
}

// Add tracks a new item that will be inserted.
func (t *ChangeTracker) Add(item core.ToDoItem) {
	added := item.Clone()
	t.track(&trackedEntry{item: &added, state: stateAdded})
}

// Remove marks an item for deletion. Removing an item that was added in the same
// session only forgets it.
func (t *ChangeTracker) Remove(item *core.ToDoItem) {
	if item == nil {
		return
	}

	entry, ok := t.entries[item.ID]
	if !ok {
		t.track(&trackedEntry{item: item, snapshot: item.Clone(), state: stateRemoved})
		return
	}

	if entry.state == stateAdded {
		t.forget(item.ID)
		return
	}

	entry.state = stateRemoved
}

// PendingChanges lists the changes in the order the items were first tracked.
func (t *ChangeTracker) PendingChanges() []Change {
	changes := make([]Change, 0, len(t.order))

	for _, id := range t.order {
		entry := t.entries[id]

		switch entry.state {
		case stateAdded:
			changes = append(changes, Change{Kind: ChangeInsert, Item: entry.item.Clone()})
		case stateRemoved:
			changes = append(changes, Change{Kind: ChangeDelete, Item: entry.snapshot.Clone()})
		case stateUnchanged:
			if !core.HasSameContent(entry.snapshot, *entry.item) {
				changed := entry.item.Clone()
				changed.ID = id

				changes = append(changes, Change{Kind: ChangeUpdate, Item: changed})
			}
		}
	}

	return changes
}

// AcceptChanges is called after the pending changes were persisted.
// Removed items are forgotten, all others become unchanged with fresh snapshots.
func (t *ChangeTracker) AcceptChanges() {
	for _, id := range append([]uuid.UUID(nil), t.order...) {
		entry := t.entries[id]

		if entry.state == stateRemoved {
			t.forget(id)
			continue
		}

		entry.snapshot = entry.item.Clone()
		entry.state = stateUnchanged
	}
}

func (t *ChangeTracker) track(entry *trackedEntry) {
	id := entry.item.ID
	if _, ok := t.entries[id]; !ok {
		t.order = append(t.order, id)
	}

	t.entries[id] = entry
}

func (t *ChangeTracker) forget(id uuid.UUID) {
	delete(t.entries, id)

	for i, tracked := range t.order {
		if tracked == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}
