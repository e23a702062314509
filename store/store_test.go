// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/voting"
)

const admin models.Identity = "0xadmin"

var recordedAt = time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)

func sampleRecords() []models.AuditRecord {
	return []models.AuditRecord{
		{Seq: 1, ID: "a1", RecordedAt: recordedAt, Kind: models.KindRegisteredParticipant, Identity: "0xvoter1"},
		{Seq: 2, ID: "a2", RecordedAt: recordedAt, Kind: models.KindPhaseChanged,
			Previous: models.PhaseRegisteringVoters, Next: models.PhaseProposalsRegistrationStarted},
		{Seq: 3, ID: "a3", RecordedAt: recordedAt, Kind: models.KindProposalRegistered, Identity: "0xvoter1",
			ProposalIndex: 1, Description: "Plant more trees"},
	}
}

// openSinks returns one sink per durable backend that runs without a server
func openSinks(t *testing.T) map[string]voting.AuditSink {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	sinks := map[string]voting.AuditSink{}
	for typ, url := range map[string]string{
		store.TypeSQLite: filepath.Join(dir, "audit.sqlite"),
		store.TypeBolt:   filepath.Join(dir, "audit.bolt"),
	} {
		sink, err := store.Open(ctx, cliparse.Config{StoreType: typ, DatabaseURL: url})
		require.NoError(t, err, typ)
		t.Cleanup(func() { sink.Close() })
		sinks[typ] = sink
	}
	return sinks
}

func TestOpen_Memory(t *testing.T) {
	sink, err := store.Open(context.Background(), cliparse.Config{StoreType: store.TypeMemory})
	require.NoError(t, err)
	assert.Nil(t, sink)
}

func TestOpen_UnknownType(t *testing.T) {
	_, err := store.Open(context.Background(), cliparse.Config{StoreType: "mongo"})
	assert.ErrorIs(t, err, store.ErrUnknownStoreType)
}

func TestSinks_AppendAndRecords(t *testing.T) {
	ctx := context.Background()
	for typ, sink := range openSinks(t) {
		t.Run(typ, func(t *testing.T) {
			empty, err := sink.Records(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for _, rec := range sampleRecords() {
				require.NoError(t, sink.Append(ctx, rec))
			}

			got, err := sink.Records(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), got)
		})
	}
}

func TestSinks_RejectDuplicateSeq(t *testing.T) {
	ctx := context.Background()
	for typ, sink := range openSinks(t) {
		t.Run(typ, func(t *testing.T) {
			rec := sampleRecords()[0]
			require.NoError(t, sink.Append(ctx, rec))

			rec.ID = "other"
			assert.Error(t, sink.Append(ctx, rec))

			got, err := sink.Records(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "a1", got[0].ID)
		})
	}
}

// A session survives a restart: records written through the sink replay
// into an identical session after the store is reopened.
func TestSinks_SessionRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, typ := range []string{store.TypeSQLite, store.TypeBolt} {
		t.Run(typ, func(t *testing.T) {
			cfg := cliparse.Config{StoreType: typ, DatabaseURL: filepath.Join(dir, "restart."+typ)}

			sink, err := store.Open(ctx, cfg)
			require.NoError(t, err)
			s, err := voting.NewSession(admin, voting.Options{Sink: sink})
			require.NoError(t, err)

			require.NoError(t, s.Register(ctx, admin, "0xvoter1"))
			require.NoError(t, s.Register(ctx, admin, "0xvoter2"))
			require.NoError(t, s.OpenProposals(ctx, admin))
			_, err = s.SubmitProposal(ctx, "0xvoter1", "Plant more trees")
			require.NoError(t, err)
			require.NoError(t, s.CloseProposals(ctx, admin))
			require.NoError(t, s.OpenVoting(ctx, admin))
			require.NoError(t, s.CastVote(ctx, "0xvoter2", 1))
			require.NoError(t, sink.Close())

			sink, err = store.Open(ctx, cfg)
			require.NoError(t, err)
			defer sink.Close()

			records, err := sink.Records(ctx)
			require.NoError(t, err)
			restored, err := voting.Restore(admin, records, voting.Options{Sink: sink})
			require.NoError(t, err)

			assert.Equal(t, s.Status(), restored.Status())
			assert.ErrorIs(t, restored.CastVote(ctx, "0xvoter2", 0), voting.ErrAlreadyVoted)
			require.NoError(t, restored.CastVote(ctx, "0xvoter1", 1))
			require.NoError(t, restored.CloseVoting(ctx, admin))
			result, err := restored.Tally(ctx, admin)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), result.WinningProposalIndex)

			records, err = sink.Records(ctx)
			require.NoError(t, err)
			assert.Len(t, records, int(restored.AuditLog().Len()))
		})
	}
}

// Identities are stored byte for byte, so a restarted session recognizes the
// same participants. Identities that could not round-trip are refused up front.
func TestSinks_IdentitySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, typ := range []string{store.TypeSQLite, store.TypeBolt} {
		t.Run(typ, func(t *testing.T) {
			cfg := cliparse.Config{StoreType: typ, DatabaseURL: filepath.Join(dir, "identity."+typ)}

			sink, err := store.Open(ctx, cfg)
			require.NoError(t, err)
			s, err := voting.NewSession(admin, voting.Options{Sink: sink})
			require.NoError(t, err)

			assert.ErrorIs(t, s.Register(ctx, admin, "v\xff"), voting.ErrInvalidInput)
			require.NoError(t, s.Register(ctx, admin, "0xvoté"))
			require.NoError(t, sink.Close())

			sink, err = store.Open(ctx, cfg)
			require.NoError(t, err)
			defer sink.Close()

			records, err := sink.Records(ctx)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, models.Identity("0xvoté"), records[0].Identity)

			restored, err := voting.Restore(admin, records, voting.Options{Sink: sink})
			require.NoError(t, err)
			assert.True(t, restored.IsRegisteredParticipant("0xvoté"))
			assert.False(t, restored.IsRegisteredParticipant("v\xff"))
		})
	}
}
