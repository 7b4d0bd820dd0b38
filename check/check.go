package check

import "context"

// Check is the interface for a single named health check.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Evaluate must never panic; failures of any kind map to false.
type Check interface {
	// Name returns the name of this check.
	Name() string

	// Evaluate runs the check and reports whether the target is healthy.
	Evaluate(ctx context.Context) bool
}

// Outcome pairs a check name with its evaluated result.
type Outcome struct {
	// Name is the check name, copied from the Check that produced it.
	Name string

	// Active reports whether the check passed.
	Active bool
}
