package client

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL     string
	timeout     time.Duration
	httpClient  *http.Client
	retry       RetryPolicy
	userAgent   string
	keyHeader   bool
	rateLimit   rate.Limit
	burst       int
	concurrency int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		retry:       DefaultRetryPolicy(),
		userAgent:   DefaultUserAgent,
		concurrency: DefaultConcurrency,
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
// It is ignored when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient uses a caller supplied HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithRetryPolicy sets the initial retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *clientOptions) {
		o.retry = policy
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithAPIKeyHeader sends the key in the X-HelpScout-API-Key header
// instead of basic auth.
func WithAPIKeyHeader() Option {
	return func(o *clientOptions) {
		o.keyHeader = true
	}
}

// WithRateLimit caps outgoing attempts to rps per second with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		if rps <= 0 {
			o.rateLimit = 0
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.rateLimit = rate.Limit(rps)
		o.burst = burst
	}
}

// WithConcurrency bounds how many pages ListAll style calls fetch at once.
// Values below 1 keep the default.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}
