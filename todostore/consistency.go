package todostore

import "context"

// ConsistencyLevel tells a store engine which database it may read from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary, so a command sees what it wrote before.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reading from a replica when one is configured.
	// Lists and lookups served to clients use it, stale data for a moment is acceptable there.
	EventualConsistency
)

type consistencyContextKey struct{}

// WithStrongConsistency marks the context so that store reads go to the primary database.
//
//	ctx = todostore.WithStrongConsistency(ctx)
//	item, err := session.FindByID(ctx, id)
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, consistencyContextKey{}, StrongConsistency)
}

// WithEventualConsistency marks the context so that store reads may be served by a replica.
//
//	ctx = todostore.WithEventualConsistency(ctx)
//	items, err := session.QueryAll(ctx)
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, consistencyContextKey{}, EventualConsistency)
}

// ConsistencyLevelFrom returns the level stored in the context, StrongConsistency if there is none.
func ConsistencyLevelFrom(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(consistencyContextKey{}).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
