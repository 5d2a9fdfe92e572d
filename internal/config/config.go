// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and identity settings of the sync agent.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the remote table synchronizer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the reference table server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds credentials used by the sync agent.
type App struct {
	// AccessToken is the bearer token sent with every remote call.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// TokenInfoURL is the identity provider endpoint used to validate
	// AccessToken once at start-up. The token is appended to the URL.
	// Empty disables the remote check.
	// Env: APP_TOKEN_INFO_URL
	TokenInfoURL string `env:"TOKEN_INFO_URL"`

	// LogPath is the file the sync agent appends its log to. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds settings of the HTTP synchronizer.
type Adapter struct {
	// HTTPAddress is the base address of the remote table service
	// (e.g. "https://aggregate.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single HTTP call (not a whole batch).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Format selects the wire format: "json" or "xml".
	// Env: ADAPTER_FORMAT
	Format string `env:"FORMAT"`

	// PushWorkers bounds the number of rows pushed in parallel. 1 keeps the
	// caller-supplied order.
	// Env: ADAPTER_PUSH_WORKERS
	PushWorkers int `env:"PUSH_WORKERS"`

	// RetryCount is the number of transport-level retries per HTTP call.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the reference server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often all tables are synchronized.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
