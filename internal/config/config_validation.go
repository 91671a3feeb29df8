// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import "strings"

// normalize fills unset policy values with their defaults. Required
// connection settings (DSN, remote address) are never defaulted; validate
// rejects them when missing.
func (cfg *Config) normalize() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.SnapshotTimeout <= 0 {
		cfg.Sync.SnapshotTimeout = DefaultSnapshotTimeout
	}
	if cfg.Sync.ApplyTimeout <= 0 {
		cfg.Sync.ApplyTimeout = DefaultApplyTimeout
	}
	if cfg.Sync.ApplyConcurrency <= 0 {
		cfg.Sync.ApplyConcurrency = DefaultApplyConcurrency
	}
	if cfg.Sync.DebounceDelay <= 0 {
		cfg.Sync.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.Sync.PeriodicInterval <= 0 {
		cfg.Sync.PeriodicInterval = DefaultPeriodicInterval
	}
	if cfg.Sync.MinSyncInterval <= 0 {
		cfg.Sync.MinSyncInterval = DefaultMinSyncInterval
	}
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.HTTPAddress == "" {
		return ErrInvalidRemoteConfigs
	}

	return nil
}
