// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

// Operation names used in errors and logs
const (
	opRegister       = "register"
	opSubmitProposal = "submit proposal"
	opCastVote       = "cast vote"
	opGetParticipant = "get participant"
	opGetProposal    = "get proposal"
	opListProposals  = "list proposals"
)

// transitionOps names the operation that moves the workflow into each phase
var transitionOps = map[models.Phase]string{
	models.PhaseProposalsRegistrationStarted: "open proposals",
	models.PhaseProposalsRegistrationEnded:   "close proposals",
	models.PhaseVotingSessionStarted:         "open voting",
	models.PhaseVotingSessionEnded:           "close voting",
	models.PhaseVotesTallied:                 "tally",
}

type role int

const (
	roleAdministrator role = iota
	roleParticipant
)

// Options configures a Session. The zero value keeps everything in memory.
type Options struct {
	// Sink, when set, durably stores each record before it takes effect
	Sink   AuditSink
	Logger *slog.Logger
	// Now stamps audit records. Defaults to time.Now.
	Now func() time.Time
}

// Session is one voting process. Mutating operations are serialized and
// atomic: checks run in the order access, phase, input, and the first failure
// returns before anything changes. Reads share a read lock.
type Session struct {
	mu       sync.RWMutex
	guard    AccessGuard
	registry *identityRegistry
	book     proposalBook
	phase    phaseController
	result   *models.TallyResult
	audit    *AuditLog
	sink     AuditSink
	logger   *slog.Logger
}

// NewSession creates a session in the RegisteringVoters phase, administered by admin.
func NewSession(admin models.Identity, opts Options) (*Session, error) {
	if err := auth.ValidateIdentity(admin); err != nil {
		return nil, fmt.Errorf("%w: administrator identity: %v", ErrInvalidInput, err)
	}
	registry := newIdentityRegistry()
	return &Session{
		guard:    AccessGuard{admin: admin, registry: registry},
		registry: registry,
		audit:    newAuditLog(opts.Now),
		sink:     opts.Sink,
		logger:   resolveLogger(opts.Logger),
	}, nil
}

// Register adds identity as a participant. Administrator only.
// Registration is not restricted to the RegisteringVoters phase.
func (s *Session) Register(ctx context.Context, caller, identity models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.execute(ctx, opRegister, caller, roleAdministrator, models.AuditRecord{
		Kind:     models.KindRegisteredParticipant,
		Identity: identity,
	})
	return err
}

// OpenProposals starts proposal registration and creates the GENESIS proposal.
func (s *Session) OpenProposals(ctx context.Context, caller models.Identity) error {
	return s.advance(ctx, caller, models.PhaseRegisteringVoters, models.PhaseProposalsRegistrationStarted)
}

func (s *Session) CloseProposals(ctx context.Context, caller models.Identity) error {
	return s.advance(ctx, caller, models.PhaseProposalsRegistrationStarted, models.PhaseProposalsRegistrationEnded)
}

func (s *Session) OpenVoting(ctx context.Context, caller models.Identity) error {
	return s.advance(ctx, caller, models.PhaseProposalsRegistrationEnded, models.PhaseVotingSessionStarted)
}

func (s *Session) CloseVoting(ctx context.Context, caller models.Identity) error {
	return s.advance(ctx, caller, models.PhaseVotingSessionStarted, models.PhaseVotingSessionEnded)
}

// Tally computes the winner and moves the session into its terminal phase.
// It succeeds at most once; later calls fail with ErrWrongPhase.
func (s *Session) Tally(ctx context.Context, caller models.Identity) (models.TallyResult, error) {
	if err := s.advance(ctx, caller, models.PhaseVotingSessionEnded, models.PhaseVotesTallied); err != nil {
		return models.TallyResult{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.result, nil
}

func (s *Session) advance(ctx context.Context, caller models.Identity, from, to models.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.execute(ctx, transitionOps[to], caller, roleAdministrator, models.AuditRecord{
		Kind:     models.KindPhaseChanged,
		Previous: from,
		Next:     to,
	})
	return err
}

// SubmitProposal appends a proposal authored by caller and returns its index.
func (s *Session) SubmitProposal(ctx context.Context, caller models.Identity, description string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.execute(ctx, opSubmitProposal, caller, roleParticipant, models.AuditRecord{
		Kind:        models.KindProposalRegistered,
		Identity:    caller,
		Description: description,
	})
	if err != nil {
		return 0, err
	}
	return rec.ProposalIndex, nil
}

// CastVote records caller's single vote for the proposal at index.
func (s *Session) CastVote(ctx context.Context, caller models.Identity, index uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.execute(ctx, opCastVote, caller, roleParticipant, models.AuditRecord{
		Kind:          models.KindVoteCast,
		Identity:      caller,
		ProposalIndex: index,
	})
	return err
}

// execute runs the role check, then check, then commit. Callers hold the write lock.
func (s *Session) execute(ctx context.Context, op string, caller models.Identity, r role, rec models.AuditRecord) (models.AuditRecord, error) {
	var err error
	switch r {
	case roleAdministrator:
		err = s.guard.requireAdministrator(caller, op)
	case roleParticipant:
		err = s.guard.requireParticipant(caller, op)
	}
	if err == nil {
		err = s.check(op, &rec)
	}
	if err != nil {
		s.logger.Warn("operation rejected",
			"event", "voting_operation_rejected",
			"op", op,
			"phase", s.phase.current.String(),
			"error", err.Error(),
		)
		return models.AuditRecord{}, err
	}

	rec, err = s.commit(ctx, rec)
	if err != nil {
		return models.AuditRecord{}, err
	}

	attrs := []any{"event", "voting_state_changed", "op", op, "seq", rec.Seq, "kind", rec.Kind}
	switch rec.Kind {
	case models.KindProposalRegistered, models.KindVoteCast:
		attrs = append(attrs, "proposal_index", rec.ProposalIndex)
	case models.KindPhaseChanged:
		attrs = append(attrs, "previous", rec.Previous.String(), "next", rec.Next.String())
		if rec.Next == models.PhaseVotesTallied {
			attrs = append(attrs, "winning_proposal_index", s.result.WinningProposalIndex)
		}
	}
	s.logger.Info("state changed", attrs...)
	return rec, nil
}

// check runs the phase and input checks for rec, in that order. It may
// normalize rec (trimmed description, assigned proposal index).
func (s *Session) check(op string, rec *models.AuditRecord) error {
	switch rec.Kind {
	case models.KindRegisteredParticipant:
		return s.registry.checkRegister(rec.Identity)

	case models.KindProposalRegistered:
		if err := s.phase.require(op, models.PhaseProposalsRegistrationStarted); err != nil {
			return err
		}
		description, err := normalizeDescription(rec.Description)
		if err != nil {
			return err
		}
		rec.Description = description
		rec.ProposalIndex = s.book.nextIndex()
		return nil

	case models.KindVoteCast:
		if err := s.phase.require(op, models.PhaseVotingSessionStarted); err != nil {
			return err
		}
		if err := s.registry.checkBallot(rec.Identity); err != nil {
			return err
		}
		_, err := s.book.get(rec.ProposalIndex)
		return err

	case models.KindPhaseChanged:
		return s.phase.checkAdvance(op, rec.Previous, rec.Next)

	default:
		return fmt.Errorf("%w: unknown record kind %q", ErrInvalidInput, rec.Kind)
	}
}

// appendTimeout bounds a single sink append
const appendTimeout = 10 * time.Second

// commit stores rec in the sink, applies it, and appends it to the audit log.
// A sink failure returns before any state changes.
//
// The append ignores cancellation of ctx: a client that disconnects after the
// sink has stored a record must not leave memory one record behind the sink.
func (s *Session) commit(ctx context.Context, rec models.AuditRecord) (models.AuditRecord, error) {
	rec = s.audit.stamp(rec)
	if s.sink != nil {
		appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
		err := s.sink.Append(appendCtx, rec)
		cancel()
		if err != nil {
			s.logger.Error("audit append failed",
				"event", "voting_audit_append_failed",
				"seq", rec.Seq,
				"kind", rec.Kind,
				"error", err.Error(),
			)
			return models.AuditRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}
	s.apply(rec)
	s.audit.append(rec)
	return rec, nil
}

// apply mutates state for a record that has already passed check
func (s *Session) apply(rec models.AuditRecord) {
	switch rec.Kind {
	case models.KindRegisteredParticipant:
		s.registry.add(rec.Identity)
	case models.KindProposalRegistered:
		s.book.append(rec.Description)
	case models.KindVoteCast:
		s.book.addVote(rec.ProposalIndex)
		s.registry.recordBallot(rec.Identity, rec.ProposalIndex)
	case models.KindPhaseChanged:
		s.phase.set(rec.Next)
		switch rec.Next {
		case models.PhaseProposalsRegistrationStarted:
			s.book.open()
		case models.PhaseVotesTallied:
			result := Tally(s.book.proposals)
			s.result = &result
		}
	}
}

// GetParticipant returns the record for identity. Participants only.
// Unknown identities come back with IsRegistered false.
func (s *Session) GetParticipant(caller, identity models.Identity) (models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard.requireParticipant(caller, opGetParticipant); err != nil {
		return models.Participant{}, err
	}
	return s.registry.get(identity), nil
}

// GetProposal returns the proposal at index. Participants only.
func (s *Session) GetProposal(caller models.Identity, index uint64) (models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard.requireParticipant(caller, opGetProposal); err != nil {
		return models.Proposal{}, err
	}
	return s.book.get(index)
}

// ListProposals returns every proposal in index order. Participants only.
func (s *Session) ListProposals(caller models.Identity) ([]models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard.requireParticipant(caller, opListProposals); err != nil {
		return nil, err
	}
	return s.book.all(), nil
}

// WinningProposalIndex is open to any caller. It is 0 until votes are tallied.
func (s *Session) WinningProposalIndex() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return 0
	}
	return s.result.WinningProposalIndex
}

// Result returns the tally result; ok is false before the tally.
func (s *Session) Result() (result models.TallyResult, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return models.TallyResult{}, false
	}
	return *s.result, true
}

// Winner reports the phase, whether votes are tallied, and the winning
// index, all read under one lock so they always agree.
func (s *Session) Winner() models.WinnerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w := models.WinnerResponse{Phase: s.phase.current}
	if s.result != nil {
		w.Tallied = true
		w.WinningProposalIndex = s.result.WinningProposalIndex
	}
	return w
}

func (s *Session) Phase() models.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase.current
}

// ProposalCount includes GENESIS once proposals have been opened
func (s *Session) ProposalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.book.proposals)
}

func (s *Session) Status() models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := models.SessionStatus{
		Phase:            s.phase.current,
		ParticipantCount: s.registry.len(),
		ProposalCount:    len(s.book.proposals),
		AuditLength:      s.audit.Len(),
	}
	if s.result != nil {
		status.WinningProposalIndex = s.result.WinningProposalIndex
	}
	return status
}

func (s *Session) IsAdministrator(caller models.Identity) bool {
	return s.guard.IsAdministrator(caller)
}

func (s *Session) IsRegisteredParticipant(caller models.Identity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guard.IsRegisteredParticipant(caller)
}

// AuditLog exposes the session's records to observers
func (s *Session) AuditLog() *AuditLog {
	return s.audit
}
