// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type VotingHandler struct {
	session *voting.Session
	cfg     cliparse.Config
}

func NewVotingHandler(session *voting.Session, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{session: session, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_index is required")
		return
	}

	caller := auth.CallerIdentity(r)
	if err := h.session.CastVote(r.Context(), caller, *req.ProposalIndex); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("vote cast",
		"voter", auth.Fingerprint(caller, h.cfg.IdentitySalt),
		"proposal_index", *req.ProposalIndex,
	)

	w.WriteHeader(http.StatusNoContent)
}
