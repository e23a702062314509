// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// ResultsHandler serves the public reads: status, winner and audit log
type ResultsHandler struct {
	session *voting.Session
	cfg     cliparse.Config
}

func NewResultsHandler(session *voting.Session, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{session: session, cfg: cfg}
}

// GetSession handles GET /session
func (h *ResultsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.session.Status())
}

// GetWinner handles GET /winner
// The index is 0 until votes are tallied; tallied tells the two cases apart.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.session.Winner())
}

// GetAudit handles GET /audit?since=N
// Returns the records with a sequence number greater than N (default 0).
func (h *ResultsHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if s := r.URL.Query().Get("since"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "since must be a non-negative integer")
			return
		}
		since = n
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuditResponse{
		Records: h.session.AuditLog().Since(since),
	})
}
