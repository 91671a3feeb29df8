// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/tmp/favsync.db")
	t.Setenv("REMOTE_ADDRESS", "api.example.com:443")
	t.Setenv("REMOTE_TOKEN", "secret-token")
	t.Setenv("SYNC_DEBOUNCE_DELAY", "3s")
	t.Setenv("SYNC_APPLY_CONCURRENCY", "8")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/favsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "api.example.com:443", cfg.Remote.HTTPAddress)
	assert.Equal(t, "secret-token", cfg.Remote.Token)
	assert.Equal(t, 3*time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, 8, cfg.Sync.ApplyConcurrency)
}

func TestParseJSON_ReadsDurationsAsStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"storage": {"db": {"dsn": "/data/fav.db"}},
		"remote": {"address": "https://api.example.com", "token": "tok", "request_timeout": "45s"},
		"sync": {
			"snapshot_timeout": "20s",
			"apply_timeout": "5s",
			"apply_concurrency": 2,
			"debounce_delay": "1500ms",
			"periodic_interval": "30s",
			"min_sync_interval": "10m"
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/fav.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Remote.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 20*time.Second, cfg.Sync.SnapshotTimeout)
	assert.Equal(t, 5*time.Second, cfg.Sync.ApplyTimeout)
	assert.Equal(t, 2, cfg.Sync.ApplyConcurrency)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.Sync.PeriodicInterval)
	assert.Equal(t, 10*time.Minute, cfg.Sync.MinSyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestNormalize_AppliesDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.normalize()

	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultSnapshotTimeout, cfg.Sync.SnapshotTimeout)
	assert.Equal(t, DefaultApplyTimeout, cfg.Sync.ApplyTimeout)
	assert.Equal(t, DefaultApplyConcurrency, cfg.Sync.ApplyConcurrency)
	assert.Equal(t, DefaultDebounceDelay, cfg.Sync.DebounceDelay)
	assert.Equal(t, DefaultPeriodicInterval, cfg.Sync.PeriodicInterval)
	assert.Equal(t, DefaultMinSyncInterval, cfg.Sync.MinSyncInterval)
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Sync.DebounceDelay = 10 * time.Second
	cfg.normalize()

	assert.Equal(t, 10*time.Second, cfg.Sync.DebounceDelay)
}

func TestValidate_RejectsMissingDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Remote.HTTPAddress = "api.example.com:443"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsInMemoryDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.DB.DSN = ":memory:"
	cfg.Remote.HTTPAddress = "api.example.com:443"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsMissingRemoteAddress(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.DB.DSN = "/tmp/fav.db"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidRemoteConfigs)
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.DB.DSN = "/tmp/fav.db"
	cfg.Remote.HTTPAddress = "api.example.com:443"
	cfg.normalize()

	require.NoError(t, cfg.validate())
}
