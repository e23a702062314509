// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterParticipantRequest: identity
  - SubmitProposalRequest: description
  - CastVoteRequest: proposal_index (non-negative integer)

# Response Types

Types for JSON responses:

  - SubmitProposalResponse: index
  - PhaseChangeResponse: previous, next
  - TallyResponse: previous, next, winning_proposal_index
  - WinnerResponse: phase, tallied, winning_proposal_index
  - SessionStatus: phase, participant_count, proposal_count, winning_proposal_index, audit_length
  - AuditResponse: records
  - ErrorResponse: error, message

# Domain Types

  - Identity: opaque caller key
  - Participant: registration and ballot status of one identity
  - Proposal: indexed description with an accumulated vote count
  - TallyResult: the winning proposal index
  - AuditRecord: one entry of the append-only audit log

# Phases

The workflow moves through six phases, strictly in order:

	RegisteringVoters → ProposalsRegistrationStarted → ProposalsRegistrationEnded
	  → VotingSessionStarted → VotingSessionEnded → VotesTallied

Phase.Next returns the single legal successor. Phases marshal to JSON by name.

# Audit Record Kinds

	KindRegisteredParticipant = "RegisteredParticipant"
	KindProposalRegistered    = "ProposalRegistered"
	KindPhaseChanged          = "PhaseChanged"
	KindVoteCast              = "VoteCast"
*/
package models
