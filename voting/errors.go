// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

var (
	ErrPermissionDenied  = errors.New("permission denied")
	ErrWrongPhase        = errors.New("wrong phase")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotAParticipant   = errors.New("not a participant")
	ErrEmptyProposal     = errors.New("empty proposal")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrAlreadyVoted      = errors.New("already voted")
	ErrInvalidInput      = errors.New("invalid input")

	// ErrStorage means the audit sink rejected a record. State is unchanged.
	ErrStorage = errors.New("audit storage failure")
	// ErrCorruptLog means a stored audit log cannot be replayed.
	ErrCorruptLog = errors.New("corrupt audit log")
)

func wrongPhase(op string, want, have models.Phase) error {
	return fmt.Errorf("%w: %s requires %s, current phase is %s", ErrWrongPhase, op, want, have)
}
