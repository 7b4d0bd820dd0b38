package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Probe kinds.
const (
	KindAPI      = "api"
	KindFunction = "function"
)

// ProbeMeta identifies a single check for telemetry purposes.
type ProbeMeta struct {
	Name string // Check name (required)
	Kind string // "api" or "function"
}

// SpanName returns the deterministic span name for this probe.
// Format: probe.exec.<kind>.<name> or probe.exec.<name>
func (m ProbeMeta) SpanName() string {
	if m.Kind != "" {
		return "probe.exec." + m.Kind + "." + m.Name
	}
	return "probe.exec." + m.Name
}

// Tracer wraps OpenTelemetry tracing with probe-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a probe execution.
	StartSpan(ctx context.Context, meta ProbeMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording whether the probe found its
	// target active.
	EndSpan(span trace.Span, active bool)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with probe metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta ProbeMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("probe.name", meta.Name),
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("probe.kind", meta.Kind))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span. An inactive outcome is recorded as an error
// status so failing probes stand out in traces.
func (t *tracerImpl) EndSpan(span trace.Span, active bool) {
	span.SetAttributes(attribute.Bool("probe.active", active))
	if active {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, "check inactive")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta ProbeMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, active bool) {
	span.End()
}
