package client

import (
	"net/http"

	"golang.org/x/time/rate"
)

// limitedTransport waits for a token before every attempt, retries included
type limitedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

func (t *limitedTransport) CloseIdleConnections() {
	if ci, ok := t.next.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
}

// limitClient returns a copy of hc whose transport is rate limited.
// The caller's client is left untouched.
func limitClient(hc *http.Client, limit rate.Limit, burst int) *http.Client {
	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	limited := *hc
	limited.Transport = &limitedTransport{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
	return &limited
}
