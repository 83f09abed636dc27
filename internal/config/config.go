// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// device-provision application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// API holds the remote management API connection settings.
	API API `envPrefix:"API_"`

	// Server holds network address and timeout settings for the HTTP
	// provisioning service.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the local provisioning-history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background history pruning job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds connection settings for the remote management API.
type API struct {
	// BaseURL is the management API root (e.g. "https://api.resin.io").
	// Env: API_URL
	BaseURL string `env:"URL"`

	// Token is the user session token used to authenticate API requests.
	// Env: API_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every outbound API request (e.g. "30s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the local persistence settings.
type Storage struct {
	// HistoryDBPath is the path to the SQLite provisioning-history
	// database file.
	// Env: STORAGE_HISTORY_DB
	HistoryDBPath string `env:"HISTORY_DB"`
}

// Workers holds configuration for the background history pruning job.
type Workers struct {
	// PruneInterval is how often the pruning pass runs (e.g. "24h").
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// Retention is how long history entries are kept (e.g. "2160h").
	// Env: WORKERS_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for any field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
