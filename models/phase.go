// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
)

// Phase is a stage of the voting workflow. Phases only move forward, one step at a time.
type Phase uint8

const (
	PhaseRegisteringVoters Phase = iota
	PhaseProposalsRegistrationStarted
	PhaseProposalsRegistrationEnded
	PhaseVotingSessionStarted
	PhaseVotingSessionEnded
	PhaseVotesTallied
)

var phaseNames = [...]string{
	PhaseRegisteringVoters:            "RegisteringVoters",
	PhaseProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	PhaseProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	PhaseVotingSessionStarted:         "VotingSessionStarted",
	PhaseVotingSessionEnded:           "VotingSessionEnded",
	PhaseVotesTallied:                 "VotesTallied",
}

// transitions is the forward-only transition table. VotesTallied has no entry.
var transitions = map[Phase]Phase{
	PhaseRegisteringVoters:            PhaseProposalsRegistrationStarted,
	PhaseProposalsRegistrationStarted: PhaseProposalsRegistrationEnded,
	PhaseProposalsRegistrationEnded:   PhaseVotingSessionStarted,
	PhaseVotingSessionStarted:         PhaseVotingSessionEnded,
	PhaseVotingSessionEnded:           PhaseVotesTallied,
}

// Valid reports whether p is one of the six workflow phases
func (p Phase) Valid() bool {
	return int(p) < len(phaseNames)
}

// Next returns the only phase reachable from p.
// ok is false when p is terminal or not a valid phase.
func (p Phase) Next() (next Phase, ok bool) {
	next, ok = transitions[p]
	return next, ok
}

// Terminal reports whether no further advancement is possible from p
func (p Phase) Terminal() bool {
	_, ok := transitions[p]
	return p.Valid() && !ok
}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
	return phaseNames[p]
}

// ParsePhase returns the phase with the given name
func ParsePhase(name string) (Phase, error) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

func (p Phase) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid phase %d", uint8(p))
	}
	return json.Marshal(p.String())
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParsePhase(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
