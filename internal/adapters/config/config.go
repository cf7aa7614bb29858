// Package config provides the configuration loader for timebanner.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// DefaultPath is where Load looks for a config file when no explicit path is
// given. A missing file is not an error; defaults and environment variables
// apply.
const DefaultPath = "timebanner.yaml"

// DefaultCacheBudgetBytes bounds the absolute render cache when the config
// does not say otherwise.
const DefaultCacheBudgetBytes = 50 << 20

// Config holds the runtime settings of the service. Values are resolved in
// order: built-in defaults, then the YAML file, then environment variables.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr" env:"TIMEBANNER_LISTEN_ADDR"`
	// CacheBudgetBytes bounds the total payload bytes of the absolute cache.
	CacheBudgetBytes int64 `yaml:"cache_budget_bytes" env:"TIMEBANNER_CACHE_BUDGET_BYTES"`
	// DefaultFormat is the strftime format used when a request supplies none.
	DefaultFormat string `yaml:"default_format" env:"TIMEBANNER_DEFAULT_FORMAT"`
	// DefaultOrder is the date component order used when a request supplies
	// none. One of "ymd", "dmy", "mdy".
	DefaultOrder string `yaml:"default_order" env:"TIMEBANNER_DEFAULT_ORDER"`
}

// Order returns the configured date order as a domain type.
func (c *Config) Order() (domain.DateOrder, error) {
	order, ok := domain.ParseDateOrder(c.DefaultOrder)
	if !ok {
		return "", zerr.With(zerr.New("invalid date order"), "order", c.DefaultOrder)
	}
	if order == "" {
		order = domain.OrderYMD
	}
	return order, nil
}

func defaults() *Config {
	return &Config{
		ListenAddr:       ":8080",
		CacheBudgetBytes: DefaultCacheBudgetBytes,
		DefaultFormat:    domain.DefaultFormat,
		DefaultOrder:     string(domain.OrderYMD),
	}
}

// Load reads the configuration file at path, then applies environment
// variable overrides. A missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file, defaults and environment apply.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment overrides")
	}

	if cfg.CacheBudgetBytes <= 0 {
		return nil, zerr.With(zerr.New("cache budget must be positive"), "cache_budget_bytes", cfg.CacheBudgetBytes)
	}
	if _, err := cfg.Order(); err != nil {
		return nil, err
	}

	return cfg, nil
}
