// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/quickly-vote/models"
)

func proposalsWithVotes(counts ...uint64) []models.Proposal {
	proposals := make([]models.Proposal, len(counts))
	for i, c := range counts {
		proposals[i] = models.Proposal{Index: uint64(i), Description: "p", VoteCount: c}
	}
	return proposals
}

func TestTallyFunc(t *testing.T) {
	tests := []struct {
		name   string
		counts []uint64
		want   uint64
	}{
		{"no proposals", nil, 0},
		{"genesis only", []uint64{0}, 0},
		{"no votes", []uint64{0, 0, 0}, 0},
		{"clear winner", []uint64{0, 2, 1}, 1},
		{"later winner", []uint64{0, 1, 3}, 2},
		{"tie goes to lowest index", []uint64{0, 1, 1}, 1},
		{"three-way tie", []uint64{0, 2, 2, 2}, 1},
		{"genesis wins", []uint64{3, 1, 2}, 0},
		{"genesis ties", []uint64{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tally(proposalsWithVotes(tt.counts...))
			assert.Equal(t, tt.want, got.WinningProposalIndex)
		})
	}
}
