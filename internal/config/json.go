// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [Config] with JSON tags and string-friendly
// durations, so operators can keep all settings in one file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		HTTPAddress    string   `json:"address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		SnapshotTimeout  Duration `json:"snapshot_timeout"`
		ApplyTimeout     Duration `json:"apply_timeout"`
		ApplyConcurrency int      `json:"apply_concurrency"`
		DebounceDelay    Duration `json:"debounce_delay"`
		PeriodicInterval Duration `json:"periodic_interval"`
		MinSyncInterval  Duration `json:"min_sync_interval"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			HTTPAddress:    jsonCfg.Remote.HTTPAddress,
			Token:          jsonCfg.Remote.Token,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			SnapshotTimeout:  time.Duration(jsonCfg.Sync.SnapshotTimeout),
			ApplyTimeout:     time.Duration(jsonCfg.Sync.ApplyTimeout),
			ApplyConcurrency: jsonCfg.Sync.ApplyConcurrency,
			DebounceDelay:    time.Duration(jsonCfg.Sync.DebounceDelay),
			PeriodicInterval: time.Duration(jsonCfg.Sync.PeriodicInterval),
			MinSyncInterval:  time.Duration(jsonCfg.Sync.MinSyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
