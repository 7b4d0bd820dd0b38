package check

import (
	"context"
	"time"
)

// EvaluateFunc is the signature for caller-supplied status functions.
type EvaluateFunc func(ctx context.Context) (bool, error)

// FuncCheckConfig configures a function-backed check.
type FuncCheckConfig struct {
	// Name identifies the check in reports.
	Name string

	// Fn produces the status. A false return, a non-nil error, or a
	// panic all count as an inactive outcome.
	Fn EvaluateFunc

	// Timeout bounds a single evaluation. Zero means unbounded.
	Timeout time.Duration
}

// FuncCheck wraps a caller-supplied status function as a Check.
//
// Failures do not propagate: an error or panic inside the function is
// contained here and converted to an inactive outcome, matching the
// endpoint check behavior.
type FuncCheck struct {
	name    string
	fn      EvaluateFunc
	timeout time.Duration
}

// NewFuncCheck creates a function-backed check.
func NewFuncCheck(config FuncCheckConfig) *FuncCheck {
	return &FuncCheck{
		name:    config.Name,
		fn:      config.Fn,
		timeout: config.Timeout,
	}
}

// Name returns the name of this check.
func (c *FuncCheck) Name() string {
	return c.name
}

// Evaluate invokes the wrapped function once.
func (c *FuncCheck) Evaluate(ctx context.Context) bool {
	if c.fn == nil {
		return false
	}

	if c.timeout <= 0 {
		return c.invoke(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- c.invoke(ctx)
	}()

	select {
	case active := <-done:
		return active
	case <-ctx.Done():
		return false
	}
}

func (c *FuncCheck) invoke(ctx context.Context) (active bool) {
	defer func() {
		if recover() != nil {
			active = false
		}
	}()

	ok, err := c.fn(ctx)
	if err != nil {
		return false
	}
	return ok
}
