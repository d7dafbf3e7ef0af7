package httpclient

import (
	"net/http"
	"time"
)

// New returns the console's HTTP client. Callers pass the authorizer
// transport so every request crosses the credential boundary exactly once.
func New(timeout time.Duration, transport http.RoundTripper) *http.Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
