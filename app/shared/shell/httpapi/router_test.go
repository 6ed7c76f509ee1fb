package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
	"github.com/AntonStoeckl/todolist-go/app/shared/shell/httpapi"
	"github.com/AntonStoeckl/todolist-go/testutil/helper"
)

func givenDispatcherWithoutHandlers() *shell.Dispatcher {
	store := helper.GivenStoreWith()
	return shell.NewDispatcher(func() shell.ToDoSession { return store.NewSession() })
}

func Test_Health_ReportsOK(t *testing.T) {
	// arrange
	router := httpapi.NewRouter(givenDispatcherWithoutHandlers(),
		httpapi.WithHealthCheck(func(context.Context) error { return nil }),
	)

	// act
	recorder := serve(t, router, http.MethodGet, "/health", nil)

	// assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func Test_Health_FailingCheck_ReportsUnavailable(t *testing.T) {
	// arrange
	router := httpapi.NewRouter(givenDispatcherWithoutHandlers(),
		httpapi.WithHealthCheck(func(context.Context) error { return errors.New("db down") }),
	)

	// act
	recorder := serve(t, router, http.MethodGet, "/health", nil)

	// assert
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, recorder.Body.String())
}

func Test_Metrics_ExposesRequestCountersByRoute(t *testing.T) {
	// arrange
	metrics := httpapi.NewHTTPMetrics()
	router := httpapi.NewRouter(givenDispatcherWithoutHandlers(), httpapi.WithMetrics(metrics))
	serve(t, router, http.MethodGet, "/health", nil)
	serve(t, router, http.MethodGet, "/api/todo/"+helper.GivenUniqueID(t).String(), nil)

	// act
	recorder := serve(t, router, http.MethodGet, "/metrics", nil)

	// assert
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `todolist_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `todolist_http_requests_total{method="GET",route="/api/todo/:id",status="500"} 1`)
	assert.Contains(t, body, "todolist_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "todolist_http_inflight_requests")
}

func Test_CORS_AllowsConfiguredOrigin(t *testing.T) {
	// arrange
	router := httpapi.NewRouter(givenDispatcherWithoutHandlers(),
		httpapi.WithAllowedOrigins([]string{"http://localhost:3000"}),
	)

	request := httptest.NewRequest(http.MethodOptions, "/api/todo", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	// act
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	// assert
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func Test_CORS_RejectsUnknownOrigin(t *testing.T) {
	// arrange
	router := httpapi.NewRouter(givenDispatcherWithoutHandlers(),
		httpapi.WithAllowedOrigins([]string{"http://localhost:3000"}),
	)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "http://evil.example")

	// act
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	// assert
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
