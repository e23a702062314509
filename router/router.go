// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

func NewRouter(session *voting.Session, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(session, cfg)
	phaseHandler := handlers.NewPhaseHandler(session, cfg)
	proposalHandler := handlers.NewProposalHandler(session, cfg)
	votingHandler := handlers.NewVotingHandler(session, cfg)
	resultsHandler := handlers.NewResultsHandler(session, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participants (register is admin only)
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Register))
	mux.HandleFunc("GET /participants/{identity}", middleware.WithLogging(participantHandler.GetParticipant))

	// Workflow (admin only)
	mux.HandleFunc("POST /phase/proposals/open", middleware.WithLogging(phaseHandler.OpenProposals))
	mux.HandleFunc("POST /phase/proposals/close", middleware.WithLogging(phaseHandler.CloseProposals))
	mux.HandleFunc("POST /phase/voting/open", middleware.WithLogging(phaseHandler.OpenVoting))
	mux.HandleFunc("POST /phase/voting/close", middleware.WithLogging(phaseHandler.CloseVoting))
	mux.HandleFunc("POST /tally", middleware.WithLogging(phaseHandler.Tally))

	// Proposals and votes (participants only)
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.SubmitProposal))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("GET /proposals/{index}", middleware.WithLogging(proposalHandler.GetProposal))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))

	// Public reads
	mux.HandleFunc("GET /session", middleware.WithLogging(resultsHandler.GetSession))
	mux.HandleFunc("GET /winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /audit", middleware.WithLogging(resultsHandler.GetAudit))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
