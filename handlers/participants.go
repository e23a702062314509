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

type ParticipantHandler struct {
	session *voting.Session
	cfg     cliparse.Config
}

func NewParticipantHandler(session *voting.Session, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{session: session, cfg: cfg}
}

// Register handles POST /participants
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	caller := auth.CallerIdentity(r)
	if err := h.session.Register(r.Context(), caller, req.Identity); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("participant registered", "participant", auth.Fingerprint(req.Identity, h.cfg.IdentitySalt))

	middleware.JSONResponse(w, http.StatusCreated, models.Participant{Identity: req.Identity, IsRegistered: true})
}

// GetParticipant handles GET /participants/{identity}
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	identity := models.Identity(r.PathValue("identity"))

	p, err := h.session.GetParticipant(auth.CallerIdentity(r), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

