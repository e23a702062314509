// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the phase-gated proposal and voting workflow.

# Session

A Session is one voting process run by a single administrator:

	s, err := voting.NewSession(admin, voting.Options{Logger: logger})

The administrator registers participants and advances the workflow.
Participants submit proposals and cast one vote each.

# Phases

	RegisteringVoters
	  → OpenProposals   → ProposalsRegistrationStarted (creates GENESIS at index 0)
	  → CloseProposals  → ProposalsRegistrationEnded
	  → OpenVoting      → VotingSessionStarted
	  → CloseVoting     → VotingSessionEnded
	  → Tally           → VotesTallied (terminal)

Every operation that needs a phase fails with ErrWrongPhase outside it.

# Atomicity

Mutating operations hold the session write lock and check, in order: the
caller's role, the phase, then the input. The first failing check returns
with no side effects and no audit record. Reads take the read lock.

# Errors

	ErrPermissionDenied   caller is not the administrator
	ErrNotAParticipant    caller is not a registered participant
	ErrWrongPhase         operation not legal in the current phase
	ErrAlreadyRegistered  identity registered twice
	ErrEmptyProposal      blank description
	ErrProposalNotFound   index outside [0, proposal count)
	ErrAlreadyVoted       second vote by the same participant
	ErrInvalidInput       malformed input
	ErrStorage            audit sink failure, nothing changed
	ErrCorruptLog         stored records cannot be replayed

All errors wrap one of these sentinels; test with errors.Is.

# Tally

Tally scans proposals by ascending index and keeps the first proposal with
strictly the most votes, so ties go to the lowest index.

# Audit Log

Each successful mutation appends exactly one record:

	RegisteredParticipant{identity}
	ProposalRegistered{index, author, description}
	PhaseChanged{previous, next}
	VoteCast{identity, index}

With Options.Sink set, a record is stored durably before it takes effect.
Restore replays stored records into a fresh session:

	records, err := sink.Records(ctx)
	s, err := voting.Restore(admin, records, voting.Options{Sink: sink})
*/
package voting
