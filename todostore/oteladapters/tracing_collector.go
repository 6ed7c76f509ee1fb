package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/todolist-go/todostore"
)

// TracingCollector implements todostore.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector using a tracer from the application's TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span as child of the span in ctx, if any.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, todostore.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan sets the final attributes and status and ends the span.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx todostore.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.setSpanStatus(status)
	otelSpanCtx.span.End()
}

var _ todostore.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext wraps an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

func (s *OTelSpanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

func (s *OTelSpanContext) setSpanStatus(status string) {
	switch status {
	case "ok", "success", "idempotent":
		s.span.SetStatus(codes.Ok, "")
	case "error", "failure":
		s.span.SetStatus(codes.Error, "Operation failed")
	case "rejected":
		s.span.SetStatus(codes.Unset, "")
		s.span.SetAttributes(attribute.String("outcome", "rejected"))
	case "canceled":
		s.span.SetStatus(codes.Error, "Operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String("status", status))
	}
}

var _ todostore.SpanContext = (*OTelSpanContext)(nil)
