package uptime

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Result is the outcome of one probe. HTTPStatus is nil when no response was received.
type Result struct {
	OK         bool
	HTTPStatus *int
	Err        error
	Duration   time.Duration
}

// Prober checks a single URL for reachability.
type Prober interface {
	Probe(ctx context.Context, url string) Result
}

// HTTPProber issues one GET per probe, following redirects, and bounds each
// probe by its own timeout.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPProber returns a prober with a traced HTTP client.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		timeout: timeout,
	}
}

// Probe never returns an error value: failures are reported in Result.
// The caller's cancellation is not propagated; only the probe timeout applies.
func (p *HTTPProber) Probe(ctx context.Context, url string) Result {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Err: err, Duration: time.Since(start)}
	}
	req.Header.Set("User-Agent", "campushub-uptime/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{Err: err, Duration: time.Since(start)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	status := resp.StatusCode
	return Result{
		OK:         status >= 200 && status < 300,
		HTTPStatus: &status,
		Duration:   time.Since(start),
	}
}
