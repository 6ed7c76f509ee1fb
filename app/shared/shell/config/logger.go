package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/AntonStoeckl/todolist-go/todostore/oteladapters"
)

// LoggerName is the instrumentation scope of the application logger.
const LoggerName = "github.com/AntonStoeckl/todolist-go"

// NewLogger builds the application logger.
// With observability enabled, records go through the otelslog bridge to the global LoggerProvider.
// Otherwise they are written as JSON to out, enriched with trace and span ids when a span is active.
func NewLogger(cfg Config, out io.Writer) *oteladapters.SlogBridgeLogger {
	if cfg.Observability.Enabled {
		return oteladapters.NewSlogBridgeLogger(LoggerName)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: ParseLogLevel(cfg.Log.Level)})

	return oteladapters.NewSlogBridgeLoggerWithHandler(oteladapters.NewTraceContextHandler(handler))
}

// ParseLogLevel maps debug, info, warn and error (case-insensitive) to slog levels.
// Anything else falls back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
