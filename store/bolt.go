// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

var auditBucketName = []byte("audit")

// BoltStore keeps the audit log in a single Bolt file, one key per record.
// Keys are big-endian sequence numbers so cursor order is log order.
type BoltStore struct {
	db *bolt.DB
}

var _ voting.AuditSink = (*BoltStore)(nil)

// OpenBolt opens the .db data file at path.
// It will be created if it doesn't exist.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(auditBucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audit bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Append only accepts the record directly after the last stored one
func (b *BoltStore) Append(ctx context.Context, rec models.AuditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode audit record %d: %w", rec.Seq, err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(auditBucketName)

		var last uint64
		if k, _ := bucket.Cursor().Last(); k != nil {
			last = bytesToUint64(k)
		}
		if rec.Seq != last+1 {
			return fmt.Errorf("%w: got %d, next is %d", ErrOutOfSequence, rec.Seq, last+1)
		}

		return bucket.Put(uint64ToBytes(rec.Seq), val)
	})
}

func (b *BoltStore) Records(ctx context.Context) ([]models.AuditRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := []models.AuditRecord{}
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(auditBucketName).ForEach(func(k, v []byte) error {
			var rec models.AuditRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode audit record %d: %w", bytesToUint64(k), err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}

func bytesToUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func uint64ToBytes(u uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, u)
	return buf
}
