package check

import (
	"context"
	"net/http"
	"time"
)

// DefaultHTTPTimeout bounds a single endpoint probe.
const DefaultHTTPTimeout = 10 * time.Second

// HTTPCheckConfig configures an HTTP endpoint check.
type HTTPCheckConfig struct {
	// Name identifies the check in reports.
	Name string

	// URL is the endpoint to probe with a single GET request.
	URL string

	// Timeout bounds the whole request, including connection setup.
	// Default: 10 seconds.
	Timeout time.Duration

	// Client overrides the HTTP client. When set, Timeout is ignored
	// and the client's own timeout applies.
	Client *http.Client
}

// HTTPCheck probes a single HTTP endpoint.
type HTTPCheck struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPCheck creates an HTTP endpoint check.
func NewHTTPCheck(config HTTPCheckConfig) *HTTPCheck {
	client := config.Client
	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPCheck{
		name:   config.Name,
		url:    config.URL,
		client: client,
	}
}

// Name returns the name of this check.
func (c *HTTPCheck) Name() string {
	return c.name
}

// Evaluate issues one GET request to the configured URL. It returns true
// iff the response status is exactly 200. Transport errors, timeouts, DNS
// failures, and any other status code all yield false; nothing propagates.
func (c *HTTPCheck) Evaluate(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
