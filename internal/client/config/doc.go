// Package config loads runtime configuration for the SportowyHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      per-request timeout (seconds)
//	-d string   SQLite DSN of the local secret store
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.sportowyhub.pl",
//	  "request_timeout": "15s",
//	  "database_dsn": "file:sportowyhub.db?cache=shared"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, RequestTimeout and DatabaseDSN
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
