// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct holding the session and config:

  - ParticipantHandler: registration and participant lookup
  - PhaseHandler: workflow transitions and the tally
  - ProposalHandler: proposal submission and reads
  - VotingHandler: ballot casting
  - ResultsHandler: session status, winner and audit log

	phaseHandler := handlers.NewPhaseHandler(session, cfg)

# Identity

The caller is identified by the X-Identity header. Handlers never decide
access themselves; the session returns ErrPermissionDenied or
ErrNotAParticipant and the handler maps it to 403.

# Errors

StatusFor maps session errors to HTTP status codes:

	ErrPermissionDenied, ErrNotAParticipant             403
	ErrWrongPhase, ErrAlreadyRegistered, ErrAlreadyVoted 409
	ErrEmptyProposal, ErrInvalidInput                   400
	ErrProposalNotFound                                 404
	anything else                                       500

Bodies that fail to decode, negative indices and non-numeric path indices
are rejected with 400 before the session is called.

# Logging

Successful mutations are logged with salted identity fingerprints
(auth.Fingerprint), never raw identities.
*/
package handlers
