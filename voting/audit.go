// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

// AuditSink durably stores audit records. Append must either store the
// record or return an error; a failed Append aborts the operation.
type AuditSink interface {
	Append(ctx context.Context, rec models.AuditRecord) error
	Records(ctx context.Context) ([]models.AuditRecord, error)
	Close() error
}

// RecordHandler is called after a record has been appended.
// Handlers run while the session is locked and must not call back into it.
type RecordHandler func(rec models.AuditRecord)

// AuditLog is the ordered, append-only record of state changes.
// Sequence numbers start at 1 and have no gaps.
type AuditLog struct {
	mu       sync.RWMutex
	records  []models.AuditRecord
	handlers []RecordHandler
	now      func() time.Time
}

func newAuditLog(now func() time.Time) *AuditLog {
	if now == nil {
		now = time.Now
	}
	return &AuditLog{now: now}
}

// stamp fills in the sequence number, ID, and timestamp of the next record
func (l *AuditLog) stamp(rec models.AuditRecord) models.AuditRecord {
	l.mu.RLock()
	rec.Seq = uint64(len(l.records)) + 1
	l.mu.RUnlock()
	rec.ID = auth.GenerateID()
	rec.RecordedAt = l.now().UTC()
	return rec
}

func (l *AuditLog) append(rec models.AuditRecord) {
	l.mu.Lock()
	l.records = append(l.records, rec)
	handlers := l.handlers
	l.mu.Unlock()

	for _, h := range handlers {
		h(rec)
	}
}

// Subscribe registers a handler for records appended from now on
func (l *AuditLog) Subscribe(h RecordHandler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

// Records returns a copy of every record in order
func (l *AuditLog) Records() []models.AuditRecord {
	return l.Since(0)
}

// Since returns a copy of the records with a sequence number greater than seq
func (l *AuditLog) Since(seq uint64) []models.AuditRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if seq >= uint64(len(l.records)) {
		return []models.AuditRecord{}
	}
	out := make([]models.AuditRecord, len(l.records)-int(seq))
	copy(out, l.records[seq:])
	return out
}

func (l *AuditLog) Len() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint64(len(l.records))
}
