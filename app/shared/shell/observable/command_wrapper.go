package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

// CommandWrapper instruments a command handler with metrics, tracing and logging.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	if coreHandler == nil {
		return nil, shell.ErrNilHandler
	}

	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the wrapped handler and records the outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, session shell.ToDoSession, command C) (shell.Result[shell.Unit], error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogHandlerStart(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, session, command)

	duration := time.Since(commandStart)
	if err != nil {
		status := shell.ErrorStatus(err)
		shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
		shell.FinishSpan(w.tracingCollector, span, status, duration, err)
		shell.LogHandlerError(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, err)

		return result, err
	}

	outcome := result.Outcome()
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, outcome, duration)
	shell.FinishSpan(w.tracingCollector, span, outcome, duration, nil)
	shell.LogHandlerCompleted(
		ctx, w.logger, w.contextualLogger,
		shell.LogMsgCommandCompleted, shell.LogAttrCommandType, w.commandType,
		outcome, result.Error, duration,
	)

	return result, nil
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
// It is only used if no contextual logger is set.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}
