// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

// Restore rebuilds a session by replaying records in order. Each record goes
// through the same checks as the operation that produced it, so a log that
// skips a phase, double-votes, or has sequence gaps is rejected with
// ErrCorruptLog. The restored session appends new records to opts.Sink.
func Restore(admin models.Identity, records []models.AuditRecord, opts Options) (*Session, error) {
	s, err := NewSession(admin, Options{Logger: opts.Logger, Now: opts.Now})
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := s.replay(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): %w", ErrCorruptLog, rec.Seq, rec.Kind, err)
		}
	}
	s.sink = opts.Sink

	s.logger.Info("session restored",
		"event", "voting_session_restored",
		"records", len(records),
		"phase", s.phase.current.String(),
	)
	return s, nil
}

func (s *Session) replay(rec models.AuditRecord) error {
	if want := s.audit.Len() + 1; rec.Seq != want {
		return fmt.Errorf("sequence %d, want %d", rec.Seq, want)
	}

	op := replayOp(rec)
	switch rec.Kind {
	case models.KindProposalRegistered, models.KindVoteCast:
		if err := s.guard.requireParticipant(rec.Identity, op); err != nil {
			return err
		}
	}

	checked := rec
	if err := s.check(op, &checked); err != nil {
		return err
	}
	if checked.ProposalIndex != rec.ProposalIndex || checked.Description != rec.Description {
		return fmt.Errorf("proposal %d %q does not match expected %d %q",
			rec.ProposalIndex, rec.Description, checked.ProposalIndex, checked.Description)
	}

	s.apply(rec)
	s.audit.append(rec)
	return nil
}

func replayOp(rec models.AuditRecord) string {
	switch rec.Kind {
	case models.KindRegisteredParticipant:
		return opRegister
	case models.KindProposalRegistered:
		return opSubmitProposal
	case models.KindVoteCast:
		return opCastVote
	case models.KindPhaseChanged:
		if op, ok := transitionOps[rec.Next]; ok {
			return op
		}
	}
	return "replay"
}
