package observe

import (
	"context"
	"time"
)

// ProbeFunc is the signature for probe execution functions.
// This is the standard function signature that Middleware wraps.
type ProbeFunc func(ctx context.Context) bool

// Middleware wraps probe execution with observability (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ProbeFunc.
//   - Context: propagates context through tracing spans.
//   - Ownership: the probe outcome is passed through unmodified;
//     instrumentation never changes what a check reports.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability
// components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a ProbeFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(meta ProbeMeta, fn ProbeFunc) ProbeFunc {
	return func(ctx context.Context) bool {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		active := fn(ctx)
		duration := time.Since(start)

		m.tracer.EndSpan(span, active)
		m.metrics.RecordProbe(ctx, meta, duration, active)

		probeLogger := m.logger.WithProbe(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			{Key: "active", Value: active},
		}

		if active {
			probeLogger.Debug(ctx, "probe completed", fields...)
		} else {
			probeLogger.Warn(ctx, "probe found target inactive", fields...)
		}

		return active
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
