package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Help Scout v1 API root
	DefaultBaseURL = "https://api.helpscout.net/v1"
	// DefaultTimeout applies to the HTTP client built by New
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the library
	DefaultUserAgent = "helpscout-go"

	// APIKeyHeader carries the key when header authentication is enabled
	APIKeyHeader = "X-HelpScout-API-Key"

	// basicAuthPassword is the filler password paired with the API key
	basicAuthPassword = "X"
)

// Client represents a Help Scout API client
type Client struct {
	baseURL     string
	apiKey      string
	keyHeader   bool
	userAgent   string
	httpClient  *http.Client
	retry       atomic.Pointer[RetryPolicy]
	concurrency int
	logger      zerolog.Logger
}

// New creates a new Help Scout client
func New(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(o.baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL: %w", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be absolute: %q", ErrInvalidConfig, o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = o.timeout
	}
	if o.rateLimit > 0 {
		httpClient = limitClient(httpClient, o.rateLimit, o.burst)
	}

	c := &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		keyHeader:   o.keyHeader,
		userAgent:   o.userAgent,
		httpClient:  httpClient,
		concurrency: o.concurrency,
		logger:      logger,
	}
	c.SetRetryPolicy(o.retry)

	return c, nil
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RetryPolicy returns the policy the next call will use
func (c *Client) RetryPolicy() RetryPolicy {
	return *c.retry.Load()
}

// SetRetryPolicy replaces the retry policy. Calls already in flight keep
// the policy they started with.
func (c *Client) SetRetryPolicy(policy RetryPolicy) {
	c.retry.Store(&policy)
}

// Concurrency returns how many pages ListAll style calls fetch at once
func (c *Client) Concurrency() int {
	return c.concurrency
}

// TestConnection checks the API key against the authenticated user endpoint
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Get(ctx, "users/me.json", nil); err != nil {
		return fmt.Errorf("failed to connect to Help Scout: %w", err)
	}

	c.logger.Debug().Msg("Successfully connected to Help Scout")
	return nil
}
