package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/todolist-go/todostore/oteladapters"
)

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	assert.NotNil(t, oteladapters.NewSlogBridgeLogger("test"), "NewSlogBridgeLogger should return a logger")
}

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message", "item_count", 3)
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"msg":"debug message"`)
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"item_count":3`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"error":"boom"`)
}

func Test_SlogBridgeLogger_RespectsHandlerLevel(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// act
	logger.Debug("hidden")

	// assert
	assert.Empty(t, buf.String(), "debug records should be dropped at info level")
}

func Test_OTelLogger_DoesNotPanicWithOddArgs(t *testing.T) {
	// arrange
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))

	// act & assert
	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "message", "key", "value", "dangling")
		logger.ErrorContext(context.Background(), "message", 42, "not a key", "count", 7)
	})
}
