// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// PhaseHandler serves the administrator's workflow transitions
type PhaseHandler struct {
	session *voting.Session
	cfg     cliparse.Config
}

func NewPhaseHandler(session *voting.Session, cfg cliparse.Config) *PhaseHandler {
	return &PhaseHandler{session: session, cfg: cfg}
}

// OpenProposals handles POST /phase/proposals/open
func (h *PhaseHandler) OpenProposals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.OpenProposals,
		models.PhaseRegisteringVoters, models.PhaseProposalsRegistrationStarted)
}

// CloseProposals handles POST /phase/proposals/close
func (h *PhaseHandler) CloseProposals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.CloseProposals,
		models.PhaseProposalsRegistrationStarted, models.PhaseProposalsRegistrationEnded)
}

// OpenVoting handles POST /phase/voting/open
func (h *PhaseHandler) OpenVoting(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.OpenVoting,
		models.PhaseProposalsRegistrationEnded, models.PhaseVotingSessionStarted)
}

// CloseVoting handles POST /phase/voting/close
func (h *PhaseHandler) CloseVoting(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.session.CloseVoting,
		models.PhaseVotingSessionStarted, models.PhaseVotingSessionEnded)
}

// Tally handles POST /tally
func (h *PhaseHandler) Tally(w http.ResponseWriter, r *http.Request) {
	result, err := h.session.Tally(r.Context(), auth.CallerIdentity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("votes tallied", "winning_proposal_index", result.WinningProposalIndex)

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		Previous:             models.PhaseVotingSessionEnded,
		Next:                 models.PhaseVotesTallied,
		WinningProposalIndex: result.WinningProposalIndex,
	})
}

func (h *PhaseHandler) transition(w http.ResponseWriter, r *http.Request,
	advance func(context.Context, models.Identity) error, from, to models.Phase) {
	if err := advance(r.Context(), auth.CallerIdentity(r)); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("phase changed", "previous", from.String(), "next", to.String())

	middleware.JSONResponse(w, http.StatusOK, models.PhaseChangeResponse{Previous: from, Next: to})
}
