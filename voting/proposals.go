// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-vote/models"
)

// MaxDescriptionLen bounds a proposal description, in bytes after trimming
const MaxDescriptionLen = 4096

// proposalBook is the ordered proposal collection. Indices equal slice
// positions, so they are never reused or reordered.
type proposalBook struct {
	proposals []models.Proposal
}

// open creates the GENESIS proposal at index 0
func (b *proposalBook) open() {
	b.proposals = []models.Proposal{{Index: 0, Description: models.GenesisDescription}}
}

func (b *proposalBook) nextIndex() uint64 {
	return uint64(len(b.proposals))
}

func (b *proposalBook) append(description string) uint64 {
	index := b.nextIndex()
	b.proposals = append(b.proposals, models.Proposal{Index: index, Description: description})
	return index
}

func (b *proposalBook) get(index uint64) (models.Proposal, error) {
	if index >= uint64(len(b.proposals)) {
		return models.Proposal{}, fmt.Errorf("%w: index %d, %d proposals", ErrProposalNotFound, index, len(b.proposals))
	}
	return b.proposals[index], nil
}

func (b *proposalBook) addVote(index uint64) {
	b.proposals[index].VoteCount++
}

func (b *proposalBook) all() []models.Proposal {
	out := make([]models.Proposal, len(b.proposals))
	copy(out, b.proposals)
	return out
}

// normalizeDescription trims surrounding whitespace and rejects blank,
// oversized, or non-UTF-8 descriptions.
func normalizeDescription(description string) (string, error) {
	if !utf8.ValidString(description) {
		return "", fmt.Errorf("%w: description is not valid UTF-8", ErrInvalidInput)
	}
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", ErrEmptyProposal
	}
	if len(trimmed) > MaxDescriptionLen {
		return "", fmt.Errorf("%w: description exceeds %d bytes", ErrInvalidInput, MaxDescriptionLen)
	}
	return trimmed, nil
}
