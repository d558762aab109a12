package config

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/helpscout/client"
)

// Options converts the connection settings into client options
func (c HelpScoutConfig) Options() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithTimeout(c.Timeout),
		client.WithRetryPolicy(client.RetryPolicy{Count: c.Retry.Count, Wait: c.Retry.Wait}),
		client.WithConcurrency(c.Concurrency),
	}

	if c.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.UserAgent))
	}
	if c.KeyHeader {
		opts = append(opts, client.WithAPIKeyHeader())
	}
	if c.RateLimit.RequestsPerSecond > 0 {
		opts = append(opts, client.WithRateLimit(c.RateLimit.RequestsPerSecond, c.RateLimit.Burst))
	}

	return opts
}

// NewClient builds a client from the connection settings
func (c HelpScoutConfig) NewClient(logger zerolog.Logger, extra ...client.Option) (*client.Client, error) {
	return client.New(c.APIKey, logger, append(c.Options(), extra...)...)
}
