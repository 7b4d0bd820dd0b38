// Package check provides named health checks and a concurrent prober.
//
// A Check is anything with a name that can be evaluated to a boolean.
// Two implementations are provided: HTTPCheck probes an endpoint with a
// bounded GET request, and FuncCheck wraps an arbitrary status function.
// Both contain their own failures; Evaluate never panics and never
// returns an error.
//
// # Basic Usage
//
//	api := check.NewHTTPCheck(check.HTTPCheckConfig{
//	    Name: "billing",
//	    URL:  "http://billing.internal/health",
//	})
//
//	db := check.NewFuncCheck(check.FuncCheckConfig{
//	    Name: "database",
//	    Fn: func(ctx context.Context) (bool, error) {
//	        return pool.PingContext(ctx) == nil, nil
//	    },
//	})
//
//	outcomes := check.Probe(ctx, []check.Check{api, db})
//
// Probe runs every check concurrently and returns outcomes in input
// order regardless of which check finishes first.
package check
