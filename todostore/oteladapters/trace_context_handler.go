package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Attribute keys added by TraceContextHandler.
const (
	LogAttrTraceID = "trace_id"
	LogAttrSpanID  = "span_id"
)

// TraceContextHandler decorates a slog.Handler and adds the trace and span id of the
// active span in the record's context, so stdout logs can be correlated with traces.
type TraceContextHandler struct {
	next slog.Handler
}

// NewTraceContextHandler wraps next.
func NewTraceContextHandler(next slog.Handler) *TraceContextHandler {
	return &TraceContextHandler{next: next}
}

func (h *TraceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *TraceContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		record.AddAttrs(
			slog.String(LogAttrTraceID, spanCtx.TraceID().String()),
			slog.String(LogAttrSpanID, spanCtx.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

func (h *TraceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceContextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *TraceContextHandler) WithGroup(name string) slog.Handler {
	return &TraceContextHandler{next: h.next.WithGroup(name)}
}

var _ slog.Handler = (*TraceContextHandler)(nil)
