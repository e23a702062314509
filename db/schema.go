// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Statements run one at a time; the same text works on PostgreSQL and SQLite.
var schema = []string{
	`
-- Audit records, one row per state change, seq is gapless from 1
CREATE TABLE IF NOT EXISTS audit_record (
    seq BIGINT PRIMARY KEY CHECK (seq > 0),
    id TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL CHECK (kind IN ('RegisteredParticipant', 'ProposalRegistered', 'PhaseChanged', 'VoteCast')),
    identity TEXT NOT NULL DEFAULT '',
    proposal_index BIGINT NOT NULL DEFAULT 0 CHECK (proposal_index >= 0),
    description TEXT NOT NULL DEFAULT '',
    previous_phase SMALLINT NOT NULL DEFAULT 0 CHECK (previous_phase BETWEEN 0 AND 5),
    next_phase SMALLINT NOT NULL DEFAULT 0 CHECK (next_phase BETWEEN 0 AND 5),
    recorded_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_record_kind ON audit_record(kind)`,
}
