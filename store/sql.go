// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// SQLStore keeps the audit log in the audit_record table.
// Queries use $N placeholders, which lib/pq and modernc.org/sqlite both accept.
type SQLStore struct {
	db *sql.DB
}

var _ voting.AuditSink = (*SQLStore)(nil)

// NewSQLStore creates the schema if needed. The store takes ownership of conn.
func NewSQLStore(ctx context.Context, conn *sql.DB) (*SQLStore, error) {
	if err := db.CreateSchema(ctx, conn); err != nil {
		return nil, err
	}
	return &SQLStore{db: conn}, nil
}

func (s *SQLStore) Append(ctx context.Context, rec models.AuditRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_record (seq, id, kind, identity, proposal_index, description, previous_phase, next_phase, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, int64(rec.Seq), rec.ID, rec.Kind, string(rec.Identity), int64(rec.ProposalIndex), rec.Description,
		int(rec.Previous), int(rec.Next), rec.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert audit record %d: %w", rec.Seq, err)
	}
	return nil
}

func (s *SQLStore) Records(ctx context.Context) (records []models.AuditRecord, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, kind, identity, proposal_index, description, previous_phase, next_phase, recorded_at
		FROM audit_record
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer func() { err = multierr.Append(err, rows.Close()) }()

	records = []models.AuditRecord{}
	for rows.Next() {
		var (
			rec            models.AuditRecord
			seq, index     int64
			identity       string
			previous, next int
			recordedAt     string
		)
		if err := rows.Scan(&seq, &rec.ID, &rec.Kind, &identity, &index, &rec.Description,
			&previous, &next, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		rec.Seq = uint64(seq)
		rec.ProposalIndex = uint64(index)
		rec.Identity = models.Identity(identity)
		rec.Previous = models.Phase(previous)
		rec.Next = models.Phase(next)
		rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("audit record %d has bad timestamp: %w", seq, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit records: %w", err)
	}
	return records, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
