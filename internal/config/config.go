// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// medirates client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote catalog/auth API settings.
	API API `envPrefix:"API_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings (connectivity probing and
	// scheduled re-sync).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds connection settings for the hosted catalog and auth API.
type API struct {
	// BaseURL is the root URL of the hosted backend
	// (e.g. "https://abc.example.co").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AnonKey is the public API key sent with every request. Guests browse
	// with only this key; admins additionally carry a session bearer token.
	// Env: API_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache database.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite database settings.
type DB struct {
	// DSN is the SQLite file path used for the offline cache
	// (e.g. "offline-rates.db").
	// Env: STORAGE_DB_DATABASE_PATH
	DSN string `env:"DATABASE_PATH"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval defines how often the background job re-triggers a sync
	// while the application is running (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval defines how often the connectivity watcher probes the
	// network (e.g. "10s").
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeAddress is the host:port dialed by the connectivity watcher.
	// When empty, the watcher derives it from the API base URL.
	// Env: WORKERS_PROBE_ADDRESS
	ProbeAddress string `env:"PROBE_ADDRESS"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and an optional JSON file, in that priority
// order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
