package monitor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/jonwraymond/upcheck/check"
	"github.com/jonwraymond/upcheck/monitor"
)

func Example() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	m, err := monitor.New(monitor.Config{
		APIs: []check.Check{
			check.NewHTTPCheck(check.HTTPCheckConfig{Name: "svc-a", URL: upstream.URL}),
		},
		Functions: []check.Check{
			check.NewFuncCheck(check.FuncCheckConfig{
				Name: "database",
				Fn:   func(ctx context.Context) (bool, error) { return true, nil },
			}),
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	mux := http.NewServeMux()
	monitor.Register(mux, "/status", m)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var envelope struct {
		Status int            `json:"status"`
		Data   monitor.Report `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	fmt.Println("HTTP status:", rec.Code)
	fmt.Println("Body status:", envelope.Status)
	fmt.Println("Healthy:", envelope.Data.Healthy())
	fmt.Println("APIs:", len(envelope.Data.APIs.Services))
	fmt.Println("Functions:", len(envelope.Data.Functions.Services))
	// Output:
	// HTTP status: 200
	// Body status: 200
	// Healthy: true
	// APIs: 1
	// Functions: 1
}

func ExampleSinkFunc() {
	sink := monitor.SinkFunc(func(err error) {
		fmt.Println("captured:", err)
	})

	sink.Capture(fmt.Errorf("orchestration failed"))
	// Output:
	// captured: orchestration failed
}
