// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsUsableLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)

	// Must not panic when logging.
	l.Debug().Msg("debug message")
	l.Info().Str("k", "v").Msg("info message")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())

	l.Error().Msg("should go nowhere")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, l.GetLevel(), got.GetLevel())
}

func TestFromContext_MissingLoggerFallsBack(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
}
