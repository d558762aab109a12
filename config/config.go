package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/helpscout/client"
)

// EnvPrefix prefixes every environment override, e.g. HELPSCOUT_API_KEY
const EnvPrefix = "HELPSCOUT"

// Load loads the configuration from file and environment. An empty path
// searches the standard locations and tolerates a missing file, so the
// environment alone can configure the client.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".helpscout"))
		}

		v.AddConfigPath("/etc/helpscout/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Help Scout defaults
	v.SetDefault("helpscout.base_url", client.DefaultBaseURL)
	v.SetDefault("helpscout.api_key", "")
	v.SetDefault("helpscout.key_header", false)
	v.SetDefault("helpscout.timeout", client.DefaultTimeout)
	v.SetDefault("helpscout.user_agent", client.DefaultUserAgent)
	v.SetDefault("helpscout.retry.count", client.DefaultRetryCount)
	v.SetDefault("helpscout.retry.wait", client.DefaultRetryWait)
	v.SetDefault("helpscout.rate_limit.requests_per_second", 0)
	v.SetDefault("helpscout.rate_limit.burst", 1)
	v.SetDefault("helpscout.concurrency", client.DefaultConcurrency)

	v.SetDefault("webhook.secret", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps HELPSCOUT_* variables onto config keys. The short forms
// below are accepted alongside the fully qualified HELPSCOUT_HELPSCOUT_API_KEY.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("helpscout.api_key", EnvPrefix+"_API_KEY")
	_ = v.BindEnv("helpscout.base_url", EnvPrefix+"_BASE_URL")
	_ = v.BindEnv("webhook.secret", EnvPrefix+"_WEBHOOK_SECRET")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.HelpScout.APIKey) == "" || cfg.HelpScout.APIKey == "your-api-key-here" {
		return fmt.Errorf("helpscout.api_key must be set to a valid API key")
	}

	if cfg.HelpScout.BaseURL == "" {
		return fmt.Errorf("helpscout.base_url is required")
	}

	if cfg.HelpScout.Timeout < 0 {
		return fmt.Errorf("helpscout.timeout must not be negative")
	}

	if cfg.HelpScout.Retry.Wait < 0 {
		return fmt.Errorf("helpscout.retry.wait must not be negative")
	}

	if cfg.HelpScout.Concurrency < 1 {
		return fmt.Errorf("helpscout.concurrency must be at least 1, got %d", cfg.HelpScout.Concurrency)
	}

	if cfg.HelpScout.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("helpscout.rate_limit.requests_per_second must not be negative")
	}
	if cfg.HelpScout.RateLimit.Burst < 0 {
		return fmt.Errorf("helpscout.rate_limit.burst must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
