package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if EXECAP_CONFIG is set
//  3. env (prefix EXECAP_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("EXECAP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: EXECAP_DATA_SOURCE, EXECAP_BUCKET_NAME, ...
	// Map env keys like EXECAP_BUCKET_NAME -> bucket_name (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("EXECAP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "execap_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations that cannot serve. An unrecognized data
// source is fatal at startup rather than at first refresh.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.DataSource {
	case SourceFortune10:
	case SourceGCS:
		if c.BucketName == "" {
			return fmt.Errorf("%w: bucket_name required for gcs source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unrecognized data_source %q", ErrInvalidConfig, c.DataSource)
	}
	if c.DefaultYear < 1900 || c.DefaultYear > 2200 {
		return fmt.Errorf("%w: default_year %d out of range", ErrInvalidConfig, c.DefaultYear)
	}
	if c.FetchRetries < 1 {
		return fmt.Errorf("%w: fetch_retries must be at least 1", ErrInvalidConfig)
	}
	if c.FetchWorkers < 1 {
		return fmt.Errorf("%w: fetch_workers must be at least 1", ErrInvalidConfig)
	}
	if c.MaxLeaderboardLimit < 1 {
		return fmt.Errorf("%w: max_leaderboard_limit must be at least 1", ErrInvalidConfig)
	}
	return nil
}
