package monitor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/upcheck/check"
	"github.com/jonwraymond/upcheck/observe"
	"github.com/jonwraymond/upcheck/sysinfo"
)

// Config configures a Monitor. APIs and Functions distinguish nil from
// empty: a nil slice means the category was never supplied and its
// report stays empty, while an empty non-nil slice produces a vacuously
// healthy category.
type Config struct {
	// APIs are the HTTP endpoint checks.
	APIs []check.Check

	// Functions are the caller-supplied status function checks.
	Functions []check.Check

	// Collector gathers host metrics. Default: a root-volume collector.
	Collector *sysinfo.Collector

	// MaxConcurrent bounds fan-out width within each category.
	// Zero means unlimited.
	MaxConcurrent int

	// Observer instruments every check evaluation with a span, probe
	// metrics, and a log line. Optional.
	Observer observe.Observer
}

// Monitor orchestrates the host metrics collector and both probers, and
// composes their results into a single Report. It holds no state across
// invocations; every Run builds fresh result structures.
type Monitor struct {
	apis      []check.Check
	functions []check.Check
	collector *sysinfo.Collector
	probeCfg  check.ProbeConfig
	logger    observe.Logger
}

// New creates a Monitor.
func New(config Config) (*Monitor, error) {
	m := &Monitor{
		collector: config.Collector,
		probeCfg:  check.ProbeConfig{MaxConcurrent: config.MaxConcurrent},
		logger:    observe.NopLogger(),
	}
	if m.collector == nil {
		m.collector = sysinfo.NewCollector()
	}

	apis := config.APIs
	functions := config.Functions

	if config.Observer != nil {
		m.logger = config.Observer.Logger()

		mw, err := observe.MiddlewareFromObserver(config.Observer)
		if err != nil {
			return nil, err
		}
		apis = instrument(mw, observe.KindAPI, apis)
		functions = instrument(mw, observe.KindFunction, functions)
	}

	m.apis = apis
	m.functions = functions
	return m, nil
}

// Run evaluates everything concurrently: the host metrics snapshot, the
// endpoint probes, and the function probes each fan out in their own
// branch, and the report is composed only after all three settle. No
// branch can abort another; failures are contained inside the checks and
// the collector. Positional order within each category is preserved
// regardless of completion order.
func (m *Monitor) Run(ctx context.Context) (Report, error) {
	var rep Report

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rep.Server = m.collector.Collect(gctx)
		return nil
	})
	g.Go(func() error {
		if m.apis != nil {
			rep.APIs = NewCategory(check.Probe(gctx, m.apis, m.probeCfg))
		}
		return nil
	})
	g.Go(func() error {
		if m.functions != nil {
			rep.Functions = NewCategory(check.Probe(gctx, m.functions, m.probeCfg))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	m.logger.Debug(ctx, "composite report assembled",
		observe.Field{Key: "healthy", Value: rep.Healthy()},
		observe.Field{Key: "apis", Value: len(m.apis)},
		observe.Field{Key: "functions", Value: len(m.functions)},
	)

	return rep, nil
}

// instrumented decorates a check with observability without changing
// its outcome.
type instrumented struct {
	inner check.Check
	fn    observe.ProbeFunc
}

func (c *instrumented) Name() string {
	return c.inner.Name()
}

func (c *instrumented) Evaluate(ctx context.Context) bool {
	return c.fn(ctx)
}

// instrument wraps every check in the observability middleware. A nil
// input stays nil so the absent-category shape survives decoration.
func instrument(mw *observe.Middleware, kind string, checks []check.Check) []check.Check {
	if checks == nil {
		return nil
	}

	wrapped := make([]check.Check, len(checks))
	for i, c := range checks {
		meta := observe.ProbeMeta{Name: c.Name(), Kind: kind}
		wrapped[i] = &instrumented{inner: c, fn: mw.Wrap(meta, c.Evaluate)}
	}
	return wrapped
}
