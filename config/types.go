package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	HelpScout HelpScoutConfig `mapstructure:"helpscout"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// HelpScoutConfig holds Help Scout API connection details
type HelpScoutConfig struct {
	BaseURL     string          `mapstructure:"base_url"`
	APIKey      string          `mapstructure:"api_key"`
	KeyHeader   bool            `mapstructure:"key_header"`
	Timeout     time.Duration   `mapstructure:"timeout"`
	UserAgent   string          `mapstructure:"user_agent"`
	Retry       RetryConfig     `mapstructure:"retry"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Concurrency int             `mapstructure:"concurrency"`
}

// RetryConfig controls retries of unavailable responses.
// Count is the total number of attempts.
type RetryConfig struct {
	Count uint          `mapstructure:"count"`
	Wait  time.Duration `mapstructure:"wait"`
}

// RateLimitConfig caps outgoing requests. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// WebhookConfig holds the shared secret used to verify deliveries
type WebhookConfig struct {
	Secret string `mapstructure:"secret"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
