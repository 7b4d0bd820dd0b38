package check

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProbeConfig configures a probe run.
type ProbeConfig struct {
	// MaxConcurrent bounds how many checks run at once.
	// Zero or negative means unlimited.
	MaxConcurrent int
}

// Probe evaluates every check concurrently and returns one Outcome per
// check, in input order. Completion order never affects result order:
// each goroutine writes only its own index.
//
// A slow or failing check does not block or fail its siblings, and no
// error ever surfaces from a probe run. A nil or empty check list yields
// an empty, non-nil slice.
func Probe(ctx context.Context, checks []Check, config ...ProbeConfig) []Outcome {
	outcomes := make([]Outcome, len(checks))
	if len(checks) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if len(config) > 0 && config[0].MaxConcurrent > 0 {
		g.SetLimit(config[0].MaxConcurrent)
	}

	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			outcomes[i] = Outcome{
				Name:   c.Name(),
				Active: c.Evaluate(ctx),
			}
			return nil
		})
	}

	// No check returns an error; Wait only synchronizes the fan-in.
	_ = g.Wait()

	return outcomes
}
