package features

import (
	"time"

	"github.com/AntonStoeckl/todolist-go/app/features/command/createtodo"
	"github.com/AntonStoeckl/todolist-go/app/features/command/deletetodo"
	"github.com/AntonStoeckl/todolist-go/app/features/command/updatepercent"
	"github.com/AntonStoeckl/todolist-go/app/features/command/updatetodo"
	"github.com/AntonStoeckl/todolist-go/app/features/query/alltodos"
	"github.com/AntonStoeckl/todolist-go/app/features/query/incomingtodos"
	"github.com/AntonStoeckl/todolist-go/app/features/query/todobyid"
	"github.com/AntonStoeckl/todolist-go/app/shared/core"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/observable"
)

type registrationConfig struct {
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	now              func() time.Time
}

// Option defines a functional option for Register.
type Option func(*registrationConfig)

// WithMetrics records handler metrics with the collector.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(cfg *registrationConfig) {
		cfg.metricsCollector = collector
	}
}

// WithTracing wraps every handler call in a span.
func WithTracing(collector shell.TracingCollector) Option {
	return func(cfg *registrationConfig) {
		cfg.tracingCollector = collector
	}
}

// WithContextualLogger logs start, completion and failure of every handler call.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(cfg *registrationConfig) {
		cfg.contextualLogger = logger
	}
}

// WithClock sets the clock used to resolve date filters.
func WithClock(now func() time.Time) Option {
	return func(cfg *registrationConfig) {
		cfg.now = now
	}
}

// Register registers all ToDo commands and queries with their validators.
// It fails if any of them is already registered.
func Register(d *shell.Dispatcher, opts ...Option) error {
	cfg := registrationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var incomingOpts []incomingtodos.Option
	if cfg.now != nil {
		incomingOpts = append(incomingOpts, incomingtodos.WithClock(cfg.now))
	}

	registrations := []func() error{
		func() error {
			return registerCommand[createtodo.Command](d, cfg, createtodo.NewCommandHandler(), createtodo.NewValidator())
		},
		func() error {
			return registerCommand[updatetodo.Command](d, cfg, updatetodo.NewCommandHandler(), updatetodo.NewValidator())
		},
		func() error {
			return registerCommand[updatepercent.Command](d, cfg, updatepercent.NewCommandHandler(), updatepercent.NewValidator())
		},
		func() error {
			return registerCommand[deletetodo.Command](d, cfg, deletetodo.NewCommandHandler())
		},
		func() error {
			return registerQuery[alltodos.Query, []core.ToDoItem](d, cfg, alltodos.NewQueryHandler())
		},
		func() error {
			return registerQuery[todobyid.Query, *core.ToDoItem](d, cfg, todobyid.NewQueryHandler())
		},
		func() error {
			return registerQuery[incomingtodos.Query, []core.ToDoItem](
				d, cfg, incomingtodos.NewQueryHandler(incomingOpts...), incomingtodos.NewValidator(),
			)
		},
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}

	return nil
}

func registerCommand[C shell.Command](
	d *shell.Dispatcher,
	cfg registrationConfig,
	handler shell.CommandHandler[C],
	validators ...shell.Validator[C],
) error {
	var opts []observable.CommandOption[C]
	if cfg.metricsCollector != nil {
		opts = append(opts, observable.WithCommandMetrics[C](cfg.metricsCollector))
	}
	if cfg.tracingCollector != nil {
		opts = append(opts, observable.WithCommandTracing[C](cfg.tracingCollector))
	}
	if cfg.contextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](cfg.contextualLogger))
	}

	wrapped, err := observable.NewCommandWrapper[C](handler, opts...)
	if err != nil {
		return err
	}

	return shell.RegisterCommand[C](d, wrapped, validators...)
}

func registerQuery[Q shell.Query, R any](
	d *shell.Dispatcher,
	cfg registrationConfig,
	handler shell.QueryHandler[Q, R],
	validators ...shell.Validator[Q],
) error {
	var opts []observable.QueryOption[Q, R]
	if cfg.metricsCollector != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](cfg.metricsCollector))
	}
	if cfg.tracingCollector != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](cfg.tracingCollector))
	}
	if cfg.contextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](cfg.contextualLogger))
	}

	wrapped, err := observable.NewQueryWrapper[Q, R](handler, opts...)
	if err != nil {
		return err
	}

	return shell.RegisterQuery[Q, R](d, wrapped, validators...)
}
