package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/todolist-go/app/features"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/config"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/httpapi"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/migrations"
	"github.com/AntonStoeckl/todolist-go/todostore/memoryengine"
	"github.com/AntonStoeckl/todolist-go/todostore/oteladapters"
	"github.com/AntonStoeckl/todolist-go/todostore/postgresengine"
)

const instrumentationName = "github.com/AntonStoeckl/todolist-go"

const (
	logMsgMigrationsFailed  = "database migrations failed, continuing with the existing schema"
	logMsgMigrationsApplied = "database migrations applied"
	logMsgMigrationsSkipped = "custom table name, skipping database migrations"
	logMsgStoreReady        = "todo store ready"
	logAttrDriver           = "driver"
	logAttrError            = "error"
	logAttrTable            = "table"
)

// App holds the fully wired application and everything that has to be closed on shutdown.
type App struct {
	router  *gin.Engine
	closers []func() error
}

type storeWiring struct {
	sessions    shell.SessionFactory
	healthCheck httpapi.HealthCheck
	closers     []func() error
}

type observability struct {
	metrics shell.MetricsCollector
	tracing shell.TracingCollector
}

// NewApp connects the store selected by cfg, registers all handlers and builds the router.
func NewApp(ctx context.Context, cfg config.Config, logger *oteladapters.SlogBridgeLogger) (*App, error) {
	app := &App{}

	obs := observability{}
	if cfg.Observability.Enabled {
		providers, err := config.NewObservabilityProviders(ctx, cfg.Observability)
		if err != nil {
			return nil, err
		}

		app.closers = append(app.closers, providers.Shutdown)
		obs.metrics = oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
		obs.tracing = oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))
	}

	switch {
	case cfg.MigratesOnStart():
		if err := migrations.Up(ctx, cfg.PG.DSN); err != nil {
			logger.ErrorContext(ctx, logMsgMigrationsFailed, logAttrError, err.Error())
		} else {
			logger.InfoContext(ctx, logMsgMigrationsApplied)
		}
	case cfg.UsesPostgres() && cfg.PG.MigrateOnStart:
		logger.WarnContext(ctx, logMsgMigrationsSkipped, logAttrTable, cfg.Store.TableName)
	}

	store, err := newStoreWiring(ctx, cfg, logger, obs)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.closers = append(app.closers, store.closers...)
	logger.InfoContext(ctx, logMsgStoreReady, logAttrDriver, cfg.Store.Driver)

	dispatcher := shell.NewDispatcher(store.sessions)

	featureOpts := []features.Option{features.WithContextualLogger(logger)}
	if obs.metrics != nil {
		featureOpts = append(featureOpts, features.WithMetrics(obs.metrics), features.WithTracing(obs.tracing))
	}

	if err := features.Register(dispatcher, featureOpts...); err != nil {
		_ = app.Close()
		return nil, err
	}

	app.router = httpapi.NewRouter(dispatcher,
		httpapi.WithLogger(logger),
		httpapi.WithMetrics(httpapi.NewHTTPMetrics()),
		httpapi.WithAllowedOrigins(cfg.HTTP.CORSAllowedOrigins),
		httpapi.WithHealthCheck(store.healthCheck),
	)

	return app, nil
}

// Router returns the HTTP handler of the application.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases all resources in reverse order of their creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}

	a.closers = nil

	return errors.Join(errs...)
}

func newStoreWiring(ctx context.Context, cfg config.Config, logger *oteladapters.SlogBridgeLogger, obs observability) (storeWiring, error) {
	if cfg.Store.Driver == config.DriverMemory {
		store := memoryengine.NewToDoStore(memoryengine.WithLogger(logger))

		return storeWiring{
			sessions:    func() shell.ToDoSession { return store.NewSession() },
			healthCheck: func(context.Context) error { return nil },
		}, nil
	}

	engineOpts := []postgresengine.Option{
		postgresengine.WithTableName(cfg.Store.TableName),
		postgresengine.WithLogger(logger),
		postgresengine.WithContextualLogger(logger),
	}
	if obs.metrics != nil {
		engineOpts = append(engineOpts, postgresengine.WithMetrics(obs.metrics), postgresengine.WithTracing(obs.tracing))
	}

	switch cfg.Store.Driver {
	case config.DriverPGX:
		return newPGXStoreWiring(ctx, cfg, engineOpts)

	case config.DriverSQLDB:
		db, err := config.NewPostgresSQLDB(ctx, cfg.PG.DSN, cfg.PG)
		if err != nil {
			return storeWiring{}, err
		}

		store, err := postgresengine.NewToDoStoreFromSQLDB(db, engineOpts...)
		if err != nil {
			_ = db.Close()
			return storeWiring{}, err
		}

		return storeWiring{
			sessions:    func() shell.ToDoSession { return store.NewSession() },
			healthCheck: db.PingContext,
			closers:     []func() error{db.Close},
		}, nil

	case config.DriverSQLX:
		db, err := config.NewPostgresSQLX(ctx, cfg.PG.DSN, cfg.PG)
		if err != nil {
			return storeWiring{}, err
		}

		store, err := postgresengine.NewToDoStoreFromSQLX(db, engineOpts...)
		if err != nil {
			_ = db.Close()
			return storeWiring{}, err
		}

		return storeWiring{
			sessions:    func() shell.ToDoSession { return store.NewSession() },
			healthCheck: db.PingContext,
			closers:     []func() error{db.Close},
		}, nil

	default:
		return storeWiring{}, fmt.Errorf("%w: %q", config.ErrUnknownStoreDriver, cfg.Store.Driver)
	}
}

// newPGXStoreWiring routes eventually consistent reads to PG_REPLICA_DSN when it is set.
func newPGXStoreWiring(ctx context.Context, cfg config.Config, engineOpts []postgresengine.Option) (storeWiring, error) {
	pool, err := config.NewPostgresPGXPool(ctx, cfg.PG.DSN, cfg.PG)
	if err != nil {
		return storeWiring{}, err
	}

	wiring := storeWiring{
		healthCheck: pool.Ping,
		closers:     []func() error{func() error { pool.Close(); return nil }},
	}

	var store postgresengine.ToDoStore

	if cfg.PG.ReplicaDSN == "" {
		store, err = postgresengine.NewToDoStoreFromPGXPool(pool, engineOpts...)
	} else {
		replica, replicaErr := config.NewPostgresPGXPool(ctx, cfg.PG.ReplicaDSN, cfg.PG)
		if replicaErr != nil {
			pool.Close()
			return storeWiring{}, replicaErr
		}

		wiring.closers = append(wiring.closers, func() error { replica.Close(); return nil })
		store, err = postgresengine.NewToDoStoreFromPGXPoolAndReplica(pool, replica, engineOpts...)
	}

	if err != nil {
		for _, closeFn := range wiring.closers {
			_ = closeFn()
		}

		return storeWiring{}, err
	}

	wiring.sessions = func() shell.ToDoSession { return store.NewSession() }

	return wiring, nil
}
