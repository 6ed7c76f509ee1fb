package incomingtodos

import (
	"context"
	"time"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/todostore"
)

// QueryHandler filters all items by their due date.
type QueryHandler struct {
	now func() time.Time
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithClock replaces the clock used to determine the current day.
func WithClock(now func() time.Time) Option {
	return func(h *QueryHandler) {
		h.now = now
	}
}

// NewQueryHandler creates a new QueryHandler using the system clock unless configured otherwise.
func NewQueryHandler(opts ...Option) QueryHandler {
	handler := QueryHandler{now: time.Now}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the workflow: QueryAll → FilterByExpiry.
func (h QueryHandler) Handle(ctx context.Context, session shell.ToDoSession, query Query) (shell.Result[[]core.ToDoItem], error) {
	ctx = todostore.WithEventualConsistency(ctx)

	items, err := session.QueryAll(ctx)
	if err != nil {
		return shell.Result[[]core.ToDoItem]{}, err
	}

	return shell.Success(core.FilterByExpiry(items, query.Filter, h.now())), nil
}
