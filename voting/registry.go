// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

// identityRegistry tracks participants and their ballot status.
// Callers hold the session lock.
type identityRegistry struct {
	participants map[models.Identity]*models.Participant
}

func newIdentityRegistry() *identityRegistry {
	return &identityRegistry{participants: make(map[models.Identity]*models.Participant)}
}

func (r *identityRegistry) checkRegister(id models.Identity) error {
	if err := auth.ValidateIdentity(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if r.isRegistered(id) {
		return ErrAlreadyRegistered
	}
	return nil
}

func (r *identityRegistry) add(id models.Identity) {
	r.participants[id] = &models.Participant{
		Identity:     id,
		IsRegistered: true,
	}
}

func (r *identityRegistry) isRegistered(id models.Identity) bool {
	p, ok := r.participants[id]
	return ok && p.IsRegistered
}

// get returns a copy of the participant record. Unknown identities
// come back with IsRegistered false.
func (r *identityRegistry) get(id models.Identity) models.Participant {
	p, ok := r.participants[id]
	if !ok {
		return models.Participant{Identity: id}
	}
	out := *p
	if p.VotedProposalIndex != nil {
		idx := *p.VotedProposalIndex
		out.VotedProposalIndex = &idx
	}
	return out
}

func (r *identityRegistry) checkBallot(id models.Identity) error {
	if p := r.participants[id]; p != nil && p.HasVoted {
		return fmt.Errorf("%w: voted for proposal %d", ErrAlreadyVoted, *p.VotedProposalIndex)
	}
	return nil
}

func (r *identityRegistry) recordBallot(id models.Identity, index uint64) {
	p := r.participants[id]
	p.HasVoted = true
	p.VotedProposalIndex = &index
}

func (r *identityRegistry) len() int {
	return len(r.participants)
}
