package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonwraymond/upcheck/observe"
)

// Runner produces a composite report. *Monitor is the standard
// implementation; the interface exists so handler failure paths can be
// exercised with fakes.
type Runner interface {
	Run(ctx context.Context) (Report, error)
}

// Sink receives errors that were contained at the route boundary, e.g.
// a crash-telemetry client. Capture is invoked fire-and-forget on its
// own goroutine; its result is ignored and it must not panic.
type Sink interface {
	Capture(err error)
}

// SinkFunc is an adapter to allow ordinary functions to be used as Sinks.
type SinkFunc func(err error)

// Capture implements the Sink interface.
func (f SinkFunc) Capture(err error) {
	f(err)
}

// HandlerConfig configures the route handler.
type HandlerConfig struct {
	// Sink receives contained orchestration errors. Optional.
	Sink Sink

	// Logger logs contained errors. Optional.
	Logger observe.Logger
}

// Handler wraps a Runner as an HTTP route handler.
//
// The response status is 200 in every case, including when checks fail
// or orchestration itself blows up. A 5xx here would make a load
// balancer eject the host from its pool, and an ejected host can no
// longer be investigated; failure is reported only through the body's
// boolean status fields, or through the {message} body in the degraded
// case. No error may escape to the HTTP layer.
func Handler(r Runner, config ...HandlerConfig) http.HandlerFunc {
	var cfg HandlerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observe.NopLogger()
	}

	return func(w http.ResponseWriter, req *http.Request) {
		report, err := runContained(req.Context(), r)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err != nil {
			logger.Error(req.Context(), "orchestration failed",
				observe.Field{Key: "error", Value: err.Error()},
			)
			if cfg.Sink != nil {
				go cfg.Sink.Capture(err)
			}
			_ = json.NewEncoder(w).Encode(Envelope{
				Status: http.StatusOK,
				Data:   ErrorBody{Message: err.Error()},
			})
			return
		}

		_ = json.NewEncoder(w).Encode(Envelope{
			Status: http.StatusOK,
			Data:   report,
		})
	}
}

// runContained converts a panic during orchestration into an error so
// the handler's single degraded path covers both failure modes.
func runContained(ctx context.Context, r Runner) (report Report, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("monitor: panic during orchestration: %v", v)
		}
	}()
	return r.Run(ctx)
}

// Register registers the composite health handler on the given mux at a
// caller-supplied path.
func Register(mux *http.ServeMux, path string, r Runner, config ...HandlerConfig) {
	mux.HandleFunc(path, Handler(r, config...))
}
