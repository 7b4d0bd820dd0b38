package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonwraymond/upcheck/check"
	"github.com/jonwraymond/upcheck/observe"
)

func okServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func boolCheck(name string, active bool) check.Check {
	return check.NewFuncCheck(check.FuncCheckConfig{
		Name: name,
		Fn:   func(ctx context.Context) (bool, error) { return active, nil },
	})
}

func TestMonitor_Run(t *testing.T) {
	srv := okServer(t)

	m, err := New(Config{
		APIs: []check.Check{
			check.NewHTTPCheck(check.HTTPCheckConfig{Name: "svc-a", URL: srv.URL}),
		},
		Functions: []check.Check{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rep.APIs.Status == nil || !*rep.APIs.Status {
		t.Error("APIs.Status should be true")
	}
	if len(rep.APIs.Services) != 1 {
		t.Fatalf("len(APIs.Services) = %d, want 1", len(rep.APIs.Services))
	}
	if rep.APIs.Services[0].Name != "svc-a" || !rep.APIs.Services[0].Active {
		t.Errorf("APIs.Services[0] = %+v, want {svc-a true}", rep.APIs.Services[0])
	}

	// Empty-but-present functions category is vacuously healthy.
	if rep.Functions.Status == nil || !*rep.Functions.Status {
		t.Error("Functions.Status should be true for an empty category")
	}
	if rep.Functions.Services == nil || len(rep.Functions.Services) != 0 {
		t.Errorf("Functions.Services = %v, want empty non-nil", rep.Functions.Services)
	}

	if rep.Server.UptimeMinutes < 0 {
		t.Errorf("Server.UptimeMinutes = %v, want >= 0", rep.Server.UptimeMinutes)
	}
}

func TestMonitor_RunFailingEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	m, err := New(Config{
		APIs: []check.Check{
			check.NewHTTPCheck(check.HTTPCheckConfig{
				Name:    "svc-a",
				URL:     srv.URL,
				Timeout: 20 * time.Millisecond,
			}),
		},
		Functions: []check.Check{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rep.APIs.Status == nil || *rep.APIs.Status {
		t.Error("APIs.Status should be false when the endpoint times out")
	}
	if rep.APIs.Services[0].Active {
		t.Error("Services[0].Active should be false")
	}
}

func TestMonitor_AbsentCategories(t *testing.T) {
	m, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rep.APIs.Status != nil || rep.APIs.Services != nil {
		t.Errorf("APIs = %+v, want zero Category for absent input", rep.APIs)
	}
	if rep.Functions.Status != nil || rep.Functions.Services != nil {
		t.Errorf("Functions = %+v, want zero Category for absent input", rep.Functions)
	}
	if !rep.Healthy() {
		t.Error("absent categories must not count against overall health")
	}
}

func TestMonitor_FailureIsolation(t *testing.T) {
	m, err := New(Config{
		APIs: []check.Check{
			// Nothing listens on this address; the probe fails fast.
			check.NewHTTPCheck(check.HTTPCheckConfig{Name: "down", URL: "http://127.0.0.1:1/health"}),
		},
		Functions: []check.Check{
			boolCheck("fine", true),
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if *rep.APIs.Status {
		t.Error("APIs.Status should be false")
	}
	if !*rep.Functions.Status {
		t.Error("a failing endpoint must not affect the functions category")
	}
	if rep.Server.UptimeMinutes < 0 {
		t.Error("a failing endpoint must not affect the metrics branch")
	}
}

func TestMonitor_OrderPreserved(t *testing.T) {
	m, err := New(Config{
		Functions: []check.Check{
			check.NewFuncCheck(check.FuncCheckConfig{Name: "slow", Fn: func(ctx context.Context) (bool, error) {
				time.Sleep(30 * time.Millisecond)
				return true, nil
			}}),
			boolCheck("fast", false),
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rep.Functions.Services[0].Name != "slow" || rep.Functions.Services[1].Name != "fast" {
		t.Errorf("Services order = [%s %s], want [slow fast]",
			rep.Functions.Services[0].Name, rep.Functions.Services[1].Name)
	}
}

func TestMonitor_WithObserver(t *testing.T) {
	obs, err := observe.NewObserver(context.Background(), observe.Config{
		ServiceName: "test",
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	m, err := New(Config{
		APIs: []check.Check{},
		Functions: []check.Check{
			boolCheck("up", true),
			boolCheck("down", false),
		},
		Observer: obs,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rep, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Instrumentation must not alter outcomes or their order.
	if !rep.Functions.Services[0].Active || rep.Functions.Services[1].Active {
		t.Errorf("Services = %+v, want [up:true down:false]", rep.Functions.Services)
	}
	if *rep.Functions.Status {
		t.Error("Functions.Status should be false")
	}

	// Empty-but-present APIs must survive decoration.
	if rep.APIs.Status == nil || rep.APIs.Services == nil {
		t.Errorf("APIs = %+v, want empty-present shape", rep.APIs)
	}
}
