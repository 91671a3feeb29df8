// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, missing HTTP address).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
