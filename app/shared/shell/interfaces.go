package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/todolist-go/app/shared/core"
)

// Command is a request that changes state.
// CommandType names the request for routing and observability.
type Command interface {
	CommandType() string
}

// Query is a request that only reads state.
type Query interface {
	QueryType() string
}

// ToDoSession is the unit of work a handler runs against.
// Items returned by FindByID are tracked: changes made to them are written by SaveChanges,
// which returns the number of affected rows. Items returned by QueryAll are not tracked.
type ToDoSession interface {
	FindByID(ctx context.Context, id uuid.UUID) (*core.ToDoItem, error)
	QueryAll(ctx context.Context) ([]core.ToDoItem, error)
	Add(item core.ToDoItem)
	Remove(item *core.ToDoItem)
	SaveChanges(ctx context.Context) (int64, error)
}

// SessionFactory opens a fresh ToDoSession. The Dispatcher calls it once per request.
type SessionFactory func() ToDoSession

// CommandHandler processes one command type.
// Expected outcomes, including failures like "not found", are returned as Result.
// Only unexpected faults are returned as error.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, session ToDoSession, command C) (Result[Unit], error)
}

// QueryHandler processes one query type and produces a result of type R.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, session ToDoSession, query Q) (Result[R], error)
}
