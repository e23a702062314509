package models

import "time"

// Identity is an opaque caller key. Identities are issued outside this service.
type Identity string

// GenesisDescription is the description of the reserved proposal at index 0
const GenesisDescription = "GENESIS"

// Audit record kinds
const (
	KindRegisteredParticipant = "RegisteredParticipant"
	KindProposalRegistered    = "ProposalRegistered"
	KindPhaseChanged          = "PhaseChanged"
	KindVoteCast              = "VoteCast"
)

// Request types

type RegisterParticipantRequest struct {
	Identity Identity `json:"identity"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

// ProposalIndex is a pointer so a missing field can be told apart from 0
type CastVoteRequest struct {
	ProposalIndex *uint64 `json:"proposal_index"`
}

// Response types

type SubmitProposalResponse struct {
	Index uint64 `json:"index"`
}

type PhaseChangeResponse struct {
	Previous Phase `json:"previous"`
	Next     Phase `json:"next"`
}

type TallyResponse struct {
	Previous             Phase  `json:"previous"`
	Next                 Phase  `json:"next"`
	WinningProposalIndex uint64 `json:"winning_proposal_index"`
}

type WinnerResponse struct {
	Phase                Phase  `json:"phase"`
	Tallied              bool   `json:"tallied"`
	WinningProposalIndex uint64 `json:"winning_proposal_index"`
}

type SessionStatus struct {
	Phase                Phase  `json:"phase"`
	ParticipantCount     int    `json:"participant_count"`
	ProposalCount        int    `json:"proposal_count"`
	WinningProposalIndex uint64 `json:"winning_proposal_index"`
	AuditLength          uint64 `json:"audit_length"`
}

type AuditResponse struct {
	Records []AuditRecord `json:"records"`
}

// Domain types

type Participant struct {
	Identity           Identity `json:"identity"`
	IsRegistered       bool     `json:"is_registered"`
	HasVoted           bool     `json:"has_voted"`
	VotedProposalIndex *uint64  `json:"voted_proposal_index,omitempty"`
}

type Proposal struct {
	Index       uint64 `json:"index"`
	Description string `json:"description"`
	VoteCount   uint64 `json:"vote_count"`
}

type TallyResult struct {
	WinningProposalIndex uint64 `json:"winning_proposal_index"`
}

// AuditRecord is one immutable entry of the audit log.
// Which optional fields are set depends on Kind.
type AuditRecord struct {
	Seq           uint64    `json:"seq"`
	ID            string    `json:"id"`
	RecordedAt    time.Time `json:"recorded_at"`
	Kind          string    `json:"kind"`
	Identity      Identity  `json:"identity,omitempty"`
	ProposalIndex uint64    `json:"proposal_index"`
	Description   string    `json:"description,omitempty"`
	Previous      Phase     `json:"previous"`
	Next          Phase     `json:"next"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
