// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(session, cfg)

# Endpoints

Health:

	GET /health

Participants:

	POST /participants              - Register an identity (admin)
	GET  /participants/{identity}   - Participant record (participants)

Workflow (admin):

	POST /phase/proposals/open  - Open proposal registration, creates GENESIS
	POST /phase/proposals/close - Close proposal registration
	POST /phase/voting/open     - Open voting
	POST /phase/voting/close    - Close voting
	POST /tally                 - Tally votes

Proposals and votes (participants):

	POST /proposals         - Submit a proposal
	GET  /proposals         - List proposals
	GET  /proposals/{index} - Get one proposal
	POST /votes             - Cast the caller's single vote

Public:

	GET /session       - Phase and counts
	GET /winner        - Winning proposal index
	GET /audit?since=N - Audit records after sequence N

The caller is identified by the X-Identity header.
*/
package router
