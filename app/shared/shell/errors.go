package shell

import "errors"

var (
	// ErrNoHandlerRegistered is returned when a request is sent for which no handler was registered.
	ErrNoHandlerRegistered = errors.New("no handler registered for request type")

	// ErrHandlerAlreadyRegistered is returned when a second handler is registered for the same request type.
	ErrHandlerAlreadyRegistered = errors.New("handler already registered for request type")

	// ErrHandlerResultTypeMismatch is returned when a query is sent with a result type
	// that differs from the one its handler was registered with.
	ErrHandlerResultTypeMismatch = errors.New("handler result type mismatch")

	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("handler must not be nil")
)
