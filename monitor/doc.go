// Package monitor aggregates health checks and host metrics into a
// single composite status response for a load balancer or monitoring
// system.
//
// A Monitor is built once from a declarative set of checks and runs
// them all concurrently on every invocation: host metrics, endpoint
// probes, and function probes each fan out in their own branch, with
// per-item failure isolation. Results keep the input order of their
// check lists.
//
// # Basic Usage
//
//	m, err := monitor.New(monitor.Config{
//	    APIs: []check.Check{
//	        check.NewHTTPCheck(check.HTTPCheckConfig{Name: "billing", URL: billingURL}),
//	    },
//	    Functions: []check.Check{
//	        check.NewFuncCheck(check.FuncCheckConfig{Name: "database", Fn: pingDB}),
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	monitor.Register(mux, "/status", m)
//
// The route always answers HTTP 200; check failures surface only in the
// response body. See Handler for the rationale.
package monitor
