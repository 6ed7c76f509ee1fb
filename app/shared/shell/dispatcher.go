package shell

import (
	"context"
	"fmt"
	"sync"
)

// Dispatcher routes commands and queries to the single handler registered for their type,
// after running every validator registered for that type.
//
// Handlers are registered at startup with RegisterCommand and RegisterQuery.
// Requests are sent with SendCommand and SendQuery.
type Dispatcher struct {
	sessions SessionFactory
	mu       sync.RWMutex
	commands map[string]registration
	queries  map[string]registration
}

type registration struct {
	handler  any
	validate func(request any) []FieldFailure
}

// NewDispatcher creates an empty Dispatcher which opens a session per request with sessions.
func NewDispatcher(sessions SessionFactory) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		commands: make(map[string]registration),
		queries:  make(map[string]registration),
	}
}

// RegisterCommand registers the handler and the validators for the command type C.
func RegisterCommand[C Command](d *Dispatcher, handler CommandHandler[C], validators ...Validator[C]) error {
	if handler == nil {
		return ErrNilHandler
	}

	var zeroCommand C

	return d.register(d.commands, zeroCommand.CommandType(), registration{
		handler:  handler,
		validate: validatorChain(validators),
	})
}

// MustRegisterCommand is like RegisterCommand but panics on error.
func MustRegisterCommand[C Command](d *Dispatcher, handler CommandHandler[C], validators ...Validator[C]) {
	if err := RegisterCommand(d, handler, validators...); err != nil {
		panic(err)
	}
}

// RegisterQuery registers the handler and the validators for the query type Q.
func RegisterQuery[Q Query, R any](d *Dispatcher, handler QueryHandler[Q, R], validators ...Validator[Q]) error {
	if handler == nil {
		return ErrNilHandler
	}

	var zeroQuery Q

	return d.register(d.queries, zeroQuery.QueryType(), registration{
		handler:  handler,
		validate: validatorChain(validators),
	})
}

// MustRegisterQuery is like RegisterQuery but panics on error.
func MustRegisterQuery[Q Query, R any](d *Dispatcher, handler QueryHandler[Q, R], validators ...Validator[Q]) {
	if err := RegisterQuery(d, handler, validators...); err != nil {
		panic(err)
	}
}

// SendCommand validates the command, opens a session and hands both to the registered handler.
// A validation failure is returned as *ValidationFailedError and the handler is not called.
func SendCommand[C Command](ctx context.Context, d *Dispatcher, command C) (Result[Unit], error) {
	commandType := command.CommandType()

	reg, err := d.lookup(d.commands, commandType)
	if err != nil {
		return Result[Unit]{}, err
	}

	handler, ok := reg.handler.(CommandHandler[C])
	if !ok {
		return Result[Unit]{}, fmt.Errorf("%w: %s", ErrHandlerResultTypeMismatch, commandType)
	}

	if failures := reg.validate(command); len(failures) > 0 {
		return Result[Unit]{}, &ValidationFailedError{Failures: failures}
	}

	return handler.Handle(ctx, d.sessions(), command)
}

// SendQuery validates the query, opens a session and hands both to the registered handler.
// R must match the result type the handler was registered with.
func SendQuery[R any, Q Query](ctx context.Context, d *Dispatcher, query Q) (Result[R], error) {
	queryType := query.QueryType()

	reg, err := d.lookup(d.queries, queryType)
	if err != nil {
		return Result[R]{}, err
	}

	handler, ok := reg.handler.(QueryHandler[Q, R])
	if !ok {
		return Result[R]{}, fmt.Errorf("%w: %s", ErrHandlerResultTypeMismatch, queryType)
	}

	if failures := reg.validate(query); len(failures) > 0 {
		return Result[R]{}, &ValidationFailedError{Failures: failures}
	}

	return handler.Handle(ctx, d.sessions(), query)
}

func (d *Dispatcher) register(registry map[string]registration, requestType string, reg registration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := registry[requestType]; exists {
		return fmt.Errorf("%w: %s", ErrHandlerAlreadyRegistered, requestType)
	}

	registry[requestType] = reg

	return nil
}

func (d *Dispatcher) lookup(registry map[string]registration, requestType string) (registration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	reg, exists := registry[requestType]
	if !exists {
		return registration{}, fmt.Errorf("%w: %s", ErrNoHandlerRegistered, requestType)
	}

	return reg, nil
}

// validatorChain runs every validator and collects all failures.
func validatorChain[R any](validators []Validator[R]) func(request any) []FieldFailure {
	return func(request any) []FieldFailure {
		typed, ok := request.(R)
		if !ok {
			return nil
		}

		var failures []FieldFailure
		for _, validator := range validators {
			failures = append(failures, validator.Validate(typed)...)
		}

		return failures
	}
}
