// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package utils

import "github.com/google/uuid"

// NewPassID returns a time-ordered identifier for one sync pass, used to
// correlate all log entries the pass emits. Falls back to a random UUID when
// the v7 generator fails.
func NewPassID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
