package monitor

import (
	"github.com/jonwraymond/upcheck/check"
	"github.com/jonwraymond/upcheck/sysinfo"
)

// ServiceStatus is the per-check entry in a category report.
type ServiceStatus struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Category is the aggregated report for one kind of check. Status is
// true iff every service in the category is active; an empty category is
// vacuously true. When the category was never configured, both fields
// stay unset and the category marshals as {}.
type Category struct {
	Status   *bool           `json:"status,omitempty"`
	Services []ServiceStatus `json:"services,omitzero"`
}

// NewCategory pairs outcomes into a Category, preserving input order,
// and AND-reduces the overall status.
func NewCategory(outcomes []check.Outcome) Category {
	services := make([]ServiceStatus, len(outcomes))
	status := true

	for i, o := range outcomes {
		services[i] = ServiceStatus{Name: o.Name, Active: o.Active}
		status = status && o.Active
	}

	return Category{Status: &status, Services: services}
}

// Healthy reports the category status. Unconfigured categories do not
// count against overall health.
func (c Category) Healthy() bool {
	return c.Status == nil || *c.Status
}

// Report is the full composite health report for one invocation.
type Report struct {
	Server    sysinfo.Metrics `json:"server"`
	APIs      Category        `json:"apis"`
	Functions Category        `json:"functions"`
}

// Healthy reports whether every configured category passed.
func (r Report) Healthy() bool {
	return r.APIs.Healthy() && r.Functions.Healthy()
}

// Envelope is the response wrapper: { "status": 200, "data": ... }.
type Envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

// ErrorBody replaces the report when orchestration itself failed.
type ErrorBody struct {
	Message string `json:"message"`
}
