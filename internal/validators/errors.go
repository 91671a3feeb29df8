// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyStationID     = errors.New("station id is required")
	ErrZeroLastModified   = errors.New("last modified timestamp is required")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)
