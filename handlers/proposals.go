// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type ProposalHandler struct {
	session *voting.Session
	cfg     cliparse.Config
}

func NewProposalHandler(session *voting.Session, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{session: session, cfg: cfg}
}

// SubmitProposal handles POST /proposals
func (h *ProposalHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	caller := auth.CallerIdentity(r)
	index, err := h.session.SubmitProposal(r.Context(), caller, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("proposal submitted",
		"proposal_index", index,
		"author", auth.Fingerprint(caller, h.cfg.IdentitySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{Index: index})
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.session.ListProposals(auth.CallerIdentity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposals)
}

// GetProposal handles GET /proposals/{index}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.session.GetProposal(auth.CallerIdentity(r), index)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// parseIndex accepts only non-negative decimal integers
func parseIndex(s string) (uint64, error) {
	index, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: proposal index %q", voting.ErrInvalidInput, s)
	}
	return index, nil
}
