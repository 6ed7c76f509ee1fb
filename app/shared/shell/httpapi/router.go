package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

const (
	routeAPI     = "/api/todo"
	routeHealth  = "/health"
	routeMetrics = "/metrics"

	corsMaxAge = 12 * time.Hour

	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// HealthCheck reports whether a dependency, typically the database, is reachable.
type HealthCheck func(ctx context.Context) error

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

type routerConfig struct {
	logger         shell.ContextualLogger
	metrics        *HTTPMetrics
	allowedOrigins []string
	healthCheck    HealthCheck
}

// RouterOption defines a functional option for configuring the router.
type RouterOption func(*routerConfig)

// WithLogger sets the logger the ErrorTranslation middleware reports unhandled faults to.
func WithLogger(logger shell.ContextualLogger) RouterOption {
	return func(cfg *routerConfig) {
		cfg.logger = logger
	}
}

// WithMetrics instruments all routes and serves the registry on /metrics.
func WithMetrics(metrics *HTTPMetrics) RouterOption {
	return func(cfg *routerConfig) {
		cfg.metrics = metrics
	}
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins []string) RouterOption {
	return func(cfg *routerConfig) {
		cfg.allowedOrigins = origins
	}
}

// WithHealthCheck makes /health answer 503 while check fails.
func WithHealthCheck(check HealthCheck) RouterOption {
	return func(cfg *routerConfig) {
		cfg.healthCheck = check
	}
}

// NewRouter creates the gin engine with all middlewares and the ToDo endpoints.
func NewRouter(dispatcher *shell.Dispatcher, options ...RouterOption) *gin.Engine {
	cfg := routerConfig{}
	for _, option := range options {
		option(&cfg)
	}

	router := gin.New()

	if cfg.metrics != nil {
		router.Use(cfg.metrics.Middleware())
		router.GET(routeMetrics, gin.WrapH(cfg.metrics.Handler()))
	}

	if len(cfg.allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.allowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           corsMaxAge,
		}))
	}

	router.Use(ErrorTranslation(cfg.logger), Recovery())

	router.GET(routeHealth, healthHandler(cfg.healthCheck))

	NewToDoEndpoints(dispatcher).Register(router.Group(routeAPI))

	return router
}

func healthHandler(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				writeJSON(c, http.StatusServiceUnavailable, HealthResponse{Status: healthStatusUnavailable})
				return
			}
		}

		writeJSON(c, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}
