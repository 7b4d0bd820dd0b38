package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records probe executions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording never blocks a probe.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordProbe records one probe execution with its duration and
	// outcome.
	RecordProbe(ctx context.Context, meta ProbeMeta, duration time.Duration, active bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	inactiveCnt  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"probe.exec.total",
		metric.WithDescription("Total number of probe executions"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}

	inactiveCnt, err := meter.Int64Counter(
		"probe.exec.failures",
		metric.WithDescription("Probe executions that found the target inactive"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"probe.exec.duration_ms",
		metric.WithDescription("Probe execution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		inactiveCnt:  inactiveCnt,
		durationHist: durationHist,
	}, nil
}

// RecordProbe records metrics for a single probe execution.
func (m *metricsImpl) RecordProbe(ctx context.Context, meta ProbeMeta, duration time.Duration, active bool) {
	attrs := []attribute.KeyValue{
		attribute.String("probe.name", meta.Name),
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("probe.kind", meta.Kind))
	}

	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)
	if !active {
		m.inactiveCnt.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordProbe(ctx context.Context, meta ProbeMeta, duration time.Duration, active bool) {
}

// NopMetrics returns a Metrics that discards everything.
func NopMetrics() Metrics {
	return &noopMetrics{}
}
