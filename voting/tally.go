// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "github.com/danielhkuo/quickly-vote/models"

// Tally picks the proposal with the most votes. Proposals are scanned in
// ascending index order and the leader only changes on a strictly greater
// count, so ties go to the lowest index and an all-zero tally yields 0.
func Tally(proposals []models.Proposal) models.TallyResult {
	var bestIndex, bestCount uint64
	for _, p := range proposals {
		if p.VoteCount > bestCount {
			bestIndex, bestCount = p.Index, p.VoteCount
		}
	}
	return models.TallyResult{WinningProposalIndex: bestIndex}
}
