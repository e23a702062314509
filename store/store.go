// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/voting"
)

// Store types accepted by Open
const (
	TypeMemory   = "memory"
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeBolt     = "bolt"
)

var (
	ErrUnknownStoreType = errors.New("unknown store type")
	ErrOutOfSequence    = errors.New("audit record out of sequence")
)

// Open returns the audit sink selected by cfg.StoreType.
// The memory type keeps nothing on disk and returns a nil sink.
func Open(ctx context.Context, cfg cliparse.Config) (voting.AuditSink, error) {
	switch cfg.StoreType {
	case TypeMemory:
		return nil, nil

	case TypeSQLite, TypePostgres:
		conn, err := sql.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		if cfg.StoreType == TypeSQLite {
			// one writer at a time; also keeps :memory: databases on a single connection
			conn.SetMaxOpenConns(1)
		}
		if err := conn.PingContext(ctx); err != nil {
			return nil, multierr.Append(fmt.Errorf("database ping failed: %w", err), conn.Close())
		}
		s, err := NewSQLStore(ctx, conn)
		if err != nil {
			return nil, multierr.Append(err, conn.Close())
		}
		return s, nil

	case TypeBolt:
		b, err := OpenBolt(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return b, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreType, cfg.StoreType)
	}
}
