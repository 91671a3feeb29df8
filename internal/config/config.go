// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import (
	"time"
)

// Default policy values applied by normalize when a field is left unset.
// They are configuration, not structural requirements: every one of them can
// be overridden via environment, flags, or the JSON config file.
const (
	DefaultRequestTimeout   = 30 * time.Second
	DefaultSnapshotTimeout  = 15 * time.Second
	DefaultApplyTimeout     = 10 * time.Second
	DefaultApplyConcurrency = 4
	DefaultDebounceDelay    = 2 * time.Second
	DefaultPeriodicInterval = time.Minute
	DefaultMinSyncInterval  = 5 * time.Minute
)

// Config is the top-level configuration container for favsync. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote favorites store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds the synchronisation policy values (timeouts, intervals,
	// concurrency).
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the local favorites store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path holding the local favorites database
	// (e.g. "/var/lib/favsync/favorites.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the remote favorites store.
type Remote struct {
	// HTTPAddress is the base address of the remote store of record,
	// in "host:port" or full-URL form (e.g. "https://api.example.com").
	// Env: REMOTE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Token is the bearer token attached to every remote request.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the overall timeout of a single outbound request
	// (e.g. "30s"). Distinct from the per-phase sync timeouts below.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the policy values of the synchronisation engine and scheduler.
type Sync struct {
	// SnapshotTimeout bounds each snapshot listing at the start of a pass.
	// A timed-out snapshot fetch aborts the whole pass.
	// Env: SYNC_SNAPSHOT_TIMEOUT
	SnapshotTimeout time.Duration `env:"SNAPSHOT_TIMEOUT"`

	// ApplyTimeout bounds each per-item remote operation during the apply
	// phase. A timed-out apply fails that item only.
	// Env: SYNC_APPLY_TIMEOUT
	ApplyTimeout time.Duration `env:"APPLY_TIMEOUT"`

	// ApplyConcurrency is the number of parallel workers applying remote
	// operations. Bounded to respect remote API rate limits.
	// Env: SYNC_APPLY_CONCURRENCY
	ApplyConcurrency int `env:"APPLY_CONCURRENCY"`

	// DebounceDelay is how long the scheduler waits after the last local
	// favorite toggle before firing a sync, so a burst of toggles produces
	// one pass.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// PeriodicInterval is how often the scheduler checks whether a periodic
	// sync is due.
	// Env: SYNC_PERIODIC_INTERVAL
	PeriodicInterval time.Duration `env:"PERIODIC_INTERVAL"`

	// MinSyncInterval is the minimum elapsed time since the last completed
	// pass before a periodic trigger becomes eligible.
	// Env: SYNC_MIN_INTERVAL
	MinSyncInterval time.Duration `env:"MIN_INTERVAL"`
}

// GetConfig loads, merges, and validates the favsync configuration from all
// available sources in the following priority order (first non-zero value
// wins during the merge):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config with defaults applied, or an error if any
// source fails to load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
