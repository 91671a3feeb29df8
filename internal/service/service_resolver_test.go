// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"testing"
	"time"

	"github.com/harborwatch/favsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastWriterWins_LocalNewer_PushesLocalRecord(t *testing.T) {
	base := time.Now()
	local := record("44013", "", true, base.Add(time.Minute))
	remote := record("44013", "", true, base)
	remote.Metadata.Name = "Stale name"

	res := NewLastWriterWinsResolver().Resolve(local, remote)

	assert.Equal(t, DecisionKeepLocal, res.Decision)
	require.NotNil(t, res.Op)
	assert.Equal(t, models.OpPushRemote, res.Op.Type)
	assert.Equal(t, models.ReasonConflict, res.Op.Reason)
	assert.Equal(t, local, res.Op.Record)
}

func TestLastWriterWins_LocalNewerToggleOff_DeletesRemote(t *testing.T) {
	base := time.Now()
	local := record("44013", "", false, base.Add(time.Minute))
	remote := record("44013", "", true, base)

	res := NewLastWriterWinsResolver().Resolve(local, remote)

	assert.Equal(t, DecisionKeepLocal, res.Decision)
	require.NotNil(t, res.Op)
	assert.Equal(t, models.OpDeleteRemote, res.Op.Type)
	assert.Equal(t, local, res.Op.Record)
}

func TestLastWriterWins_RemoteNewer_UpsertsLocal(t *testing.T) {
	base := time.Now()
	local := record("46042", "surface", true, base)
	remote := record("46042", "surface", true, base.Add(time.Second))
	remote.Metadata.Latitude = 36.785

	res := NewLastWriterWinsResolver().Resolve(local, remote)

	assert.Equal(t, DecisionKeepRemote, res.Decision)
	require.NotNil(t, res.Op)
	assert.Equal(t, models.OpUpsertLocal, res.Op.Type)
	assert.Equal(t, models.ReasonConflict, res.Op.Reason)
	assert.Equal(t, remote, res.Op.Record)
}

func TestLastWriterWins_RemoteNewerToggleOff_DeletesLocal(t *testing.T) {
	base := time.Now()
	local := record("46042", "", true, base)
	remote := record("46042", "", false, base.Add(time.Second))

	res := NewLastWriterWinsResolver().Resolve(local, remote)

	assert.Equal(t, DecisionKeepRemote, res.Decision)
	require.NotNil(t, res.Op)
	assert.Equal(t, models.OpDeleteLocal, res.Op.Type)
	assert.Equal(t, remote, res.Op.Record)
}

func TestLastWriterWins_EqualTimestamps_NoopEvenWhenFieldsDiffer(t *testing.T) {
	base := time.Now()
	local := record("41008", "", true, base)
	remote := record("41008", "", true, base)
	remote.Metadata.Depth = 18.5

	res := NewLastWriterWinsResolver().Resolve(local, remote)

	assert.Equal(t, DecisionNoop, res.Decision)
	assert.Nil(t, res.Op)
}

func TestLastWriterWins_IdenticalRecords_Noop(t *testing.T) {
	rec := record("41008", "", true, time.Now())

	res := NewLastWriterWinsResolver().Resolve(rec, rec)

	assert.Equal(t, DecisionNoop, res.Decision)
	assert.Nil(t, res.Op)
}
