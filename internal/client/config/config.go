package config

import "time"

// Config holds runtime settings for the SportowyHub CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request deadline for API calls.
//   - DatabaseDSN: SQLite DSN of the local secret store.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.sportowyhub.pl"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "file:sportowyhub.db?cache=shared"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
