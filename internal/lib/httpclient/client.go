// Package httpclient builds the shared outbound HTTP client.
package httpclient

import (
	"net/http"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// New returns a pooled client configured from cfg.
//
// Requests carry the configured User-Agent unless they set one already.
// When app is non-nil every outbound call becomes an external segment of
// the current New Relic transaction.
func New(cfg config.HTTPClientConfig, app *newrelic.Application) *http.Client {
	var transport http.RoundTripper = cleanhttp.DefaultPooledTransport()

	if app != nil {
		transport = newrelic.NewRoundTripper(transport)
	}

	transport = &userAgentTransport{
		next:      transport,
		userAgent: cfg.UserAgent,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(clone)
}
