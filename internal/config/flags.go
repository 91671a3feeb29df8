// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote store address in format [host]:[port] or a full URL
//	-t bearer token for the remote store
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s")
//	-snapshot-timeout snapshot capture timeout (e.g., "15s")
//	-apply-timeout per-item apply timeout (e.g., "10s")
//	-apply-concurrency parallel apply workers
//	-debounce delay after a local toggle before syncing (e.g., "2s")
//	-periodic-interval periodic trigger check interval (e.g., "1m")
//	-min-sync-interval minimum gap between periodic syncs (e.g., "5m")
func ParseFlags() *Config {
	var remoteAddress string
	var remoteToken string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var snapshotTimeout time.Duration
	var applyTimeout time.Duration
	var applyConcurrency int
	var debounceDelay time.Duration
	var periodicInterval time.Duration
	var minSyncInterval time.Duration

	flag.StringVar(&remoteAddress, "a", "", "Remote store address host:port or URL")
	flag.StringVar(&remoteToken, "t", "", "Remote store bearer token")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s)")
	flag.DurationVar(&snapshotTimeout, "snapshot-timeout", 0, "Snapshot capture timeout (e.g., 15s)")
	flag.DurationVar(&applyTimeout, "apply-timeout", 0, "Per-item apply timeout (e.g., 10s)")
	flag.IntVar(&applyConcurrency, "apply-concurrency", 0, "Parallel apply workers")
	flag.DurationVar(&debounceDelay, "debounce", 0, "Post-toggle debounce delay (e.g., 2s)")
	flag.DurationVar(&periodicInterval, "periodic-interval", 0, "Periodic trigger check interval (e.g., 1m)")
	flag.DurationVar(&minSyncInterval, "min-sync-interval", 0, "Minimum gap between periodic syncs (e.g., 5m)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			HTTPAddress:    remoteAddress,
			Token:          remoteToken,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			SnapshotTimeout:  snapshotTimeout,
			ApplyTimeout:     applyTimeout,
			ApplyConcurrency: applyConcurrency,
			DebounceDelay:    debounceDelay,
			PeriodicInterval: periodicInterval,
			MinSyncInterval:  minSyncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
