// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"time"
)

// Data source selectors accepted in DataSource.
const (
	SourceFortune10 = "fortune10"
	SourceGCS       = "gcs"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataSource selects the record loader: fortune10 (bundled) or gcs.
	DataSource string `koanf:"data_source"`

	// BucketName names the object storage bucket for the gcs source.
	BucketName string `koanf:"bucket_name"`

	// CredentialsFile points at a service-account JSON key. Empty means
	// Application Default Credentials.
	CredentialsFile string `koanf:"credentials_file"`

	// DefaultYear is the reporting year loaded at startup.
	DefaultYear int `koanf:"default_year"`

	// DefaultCapBudget is applied to companies whose manifest carries no
	// cap budget of its own.
	DefaultCapBudget float64 `koanf:"default_cap_budget"`

	// LuxuryTaxThreshold flags companies whose spend exceeds this share of
	// their cap budget. 1.0 means the budget itself.
	LuxuryTaxThreshold float64 `koanf:"luxury_tax_threshold"`

	// MaxLeaderboardLimit caps the limit parameter on leaderboard queries.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// FetchRetries bounds object storage fetch attempts per object.
	FetchRetries int `koanf:"fetch_retries"`

	// FetchBackoffMS is the base exponential backoff between attempts.
	FetchBackoffMS int `koanf:"fetch_backoff_ms"`

	// FetchWorkers sets how many objects are fetched concurrently.
	FetchWorkers int `koanf:"fetch_workers"`
}

// FetchBackoff returns the configured base backoff as a duration.
func (c *Config) FetchBackoff() time.Duration {
	return time.Duration(c.FetchBackoffMS) * time.Millisecond
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		DataSource:          SourceFortune10,
		BucketName:          "execap",
		CredentialsFile:     "",
		DefaultYear:         2024,
		DefaultCapBudget:    50_000_000,
		LuxuryTaxThreshold:  1.0,
		MaxLeaderboardLimit: 100,
		FetchRetries:        3,
		FetchBackoffMS:      250,
		FetchWorkers:        4,
	}
}
