package shell

// Unit is the value carried by a successful command result.
type Unit struct{}

const (
	outcomeSuccess    = "success"
	outcomeIdempotent = "idempotent"
	outcomeRejected   = "rejected"
)

// Result is the envelope every handler returns for expected outcomes.
// A failure carries a message meant for the client and the zero value of T.
// Unexpected faults are not wrapped in a Result, they are returned as error.
type Result[T any] struct {
	IsSuccess  bool
	Value      T
	Error      string
	idempotent bool
}

// Success creates a successful Result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{IsSuccess: true, Value: value}
}

// Idempotent creates a successful Result for a request that did not change any state.
func Idempotent[T any](value T) Result[T] {
	return Result[T]{IsSuccess: true, Value: value, idempotent: true}
}

// Failure creates a failed Result with the given message.
func Failure[T any](message string) Result[T] {
	return Result[T]{Error: message}
}

// IsIdempotent reports whether the Result was created with Idempotent.
func (r Result[T]) IsIdempotent() bool {
	return r.idempotent
}

// Outcome classifies the Result for metrics and logs: success, idempotent or rejected.
func (r Result[T]) Outcome() string {
	switch {
	case !r.IsSuccess:
		return outcomeRejected
	case r.idempotent:
		return outcomeIdempotent
	default:
		return outcomeSuccess
	}
}
