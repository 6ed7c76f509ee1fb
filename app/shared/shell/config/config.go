package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported values of STORE_DRIVER.
const (
	DriverPGX    = "pgx"
	DriverSQLDB  = "sqldb"
	DriverSQLX   = "sqlx"
	DriverMemory = "memory"
)

// DefaultTableName is the table the embedded migrations create.
const DefaultTableName = "todo_items"

var (
	// ErrUnknownStoreDriver is returned for a STORE_DRIVER value that is not supported.
	ErrUnknownStoreDriver = errors.New("unknown store driver")

	// ErrMissingDSN is returned when a PostgreSQL driver is selected without PG_DSN.
	ErrMissingDSN = errors.New("PG_DSN is required for the selected store driver")
)

// Config is the complete runtime configuration.
type Config struct {
	HTTP          HTTPConfig
	PG            PGConfig
	Store         StoreConfig
	Observability ObservabilityConfig
	Log           LogConfig
}

type HTTPConfig struct {
	Port               string        `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout        time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout       time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout        time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

type PGConfig struct {
	DSN             string        `env:"PG_DSN"`
	ReplicaDSN      string        `env:"PG_REPLICA_DSN"`
	MaxConns        int32         `env:"PG_MAX_CONNS" env-default:"10"`
	MinConns        int32         `env:"PG_MIN_CONNS" env-default:"2"`
	MaxConnLifetime time.Duration `env:"PG_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `env:"PG_MAX_CONN_IDLE_TIME" env-default:"5m"`
	ConnectTimeout  time.Duration `env:"PG_CONNECT_TIMEOUT" env-default:"5s"`
	MigrateOnStart  bool          `env:"PG_MIGRATE_ON_START" env-default:"true"`
}

type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER" env-default:"pgx"`
	TableName string `env:"TODO_TABLE_NAME" env-default:"todo_items"`
}

type ObservabilityConfig struct {
	Enabled        bool   `env:"OBSERVABILITY_ENABLED" env-default:"false"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" env-default:"todolist-api"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" env-default:"dev"`
	TraceEndpoint  string `env:"OTEL_TRACE_ENDPOINT" env-default:"localhost:4317"`
	MetricEndpoint string `env:"OTEL_METRIC_ENDPOINT" env-default:"localhost:4317"`
	LogEndpoint    string `env:"OTEL_LOG_ENDPOINT" env-default:"localhost:4317"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the configuration from the environment and checks that it is usable.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// UsesPostgres reports whether the configured store driver needs a database.
func (c Config) UsesPostgres() bool {
	return c.Store.Driver != DriverMemory
}

// MigratesOnStart reports whether the embedded migrations are applied at startup.
// They only create DefaultTableName, so a custom TODO_TABLE_NAME needs an externally managed schema.
func (c Config) MigratesOnStart() bool {
	return c.UsesPostgres() && c.PG.MigrateOnStart && c.Store.TableName == DefaultTableName
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case DriverPGX, DriverSQLDB, DriverSQLX:
		if c.PG.DSN == "" {
			return ErrMissingDSN
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}

	return nil
}
