// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

// StatusFor maps a session error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, voting.ErrPermissionDenied), errors.Is(err, voting.ErrNotAParticipant):
		return http.StatusForbidden
	case errors.Is(err, voting.ErrWrongPhase),
		errors.Is(err, voting.ErrAlreadyRegistered),
		errors.Is(err, voting.ErrAlreadyVoted):
		return http.StatusConflict
	case errors.Is(err, voting.ErrEmptyProposal), errors.Is(err, voting.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, voting.ErrProposalNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON error. Server errors are logged and their
// cause is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		middleware.ErrorResponse(w, status, "Internal error")
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
