// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// Admin is the administrator of every test session
const Admin models.Identity = "0xadmin"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		StoreType:     "memory",
		AdminIdentity: string(Admin),
		IdentitySalt:  "test-identity-salt",
	}
}

// NewTestSession creates an in-memory session administered by Admin
func NewTestSession(t *testing.T) *voting.Session {
	t.Helper()

	s, err := voting.NewSession(Admin, voting.Options{})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s
}

// RegisterVoters registers each identity through the administrator
func RegisterVoters(t *testing.T, s *voting.Session, voters ...models.Identity) {
	t.Helper()

	for _, v := range voters {
		if err := s.Register(context.Background(), Admin, v); err != nil {
			t.Fatalf("Failed to register %s: %v", v, err)
		}
	}
}

// AdvanceTo moves s forward until it reaches phase
func AdvanceTo(t *testing.T, s *voting.Session, phase models.Phase) {
	t.Helper()

	ctx := context.Background()
	for s.Phase() < phase {
		var err error
		switch s.Phase() {
		case models.PhaseRegisteringVoters:
			err = s.OpenProposals(ctx, Admin)
		case models.PhaseProposalsRegistrationStarted:
			err = s.CloseProposals(ctx, Admin)
		case models.PhaseProposalsRegistrationEnded:
			err = s.OpenVoting(ctx, Admin)
		case models.PhaseVotingSessionStarted:
			err = s.CloseVoting(ctx, Admin)
		case models.PhaseVotingSessionEnded:
			_, err = s.Tally(ctx, Admin)
		}
		if err != nil {
			t.Fatalf("Failed to advance from %s: %v", s.Phase(), err)
		}
	}
}

// SubmitTestProposal submits a proposal as author and returns its index
func SubmitTestProposal(t *testing.T, s *voting.Session, author models.Identity, description string) uint64 {
	t.Helper()

	index, err := s.SubmitProposal(context.Background(), author, description)
	if err != nil {
		t.Fatalf("Failed to submit proposal: %v", err)
	}
	return index
}

// VotingSession returns a session in VotingSessionStarted with voters
// registered and one proposal per description after GENESIS, all by voters[0]
func VotingSession(t *testing.T, voters []models.Identity, descriptions ...string) *voting.Session {
	t.Helper()

	s := NewTestSession(t)
	RegisterVoters(t, s, voters...)
	AdvanceTo(t, s, models.PhaseProposalsRegistrationStarted)
	for _, d := range descriptions {
		SubmitTestProposal(t, s, voters[0], d)
	}
	AdvanceTo(t, s, models.PhaseVotingSessionStarted)
	return s
}

// MakeRequest creates an HTTP test request. A non-empty caller is sent in
// the identity header.
func MakeRequest(method, path string, body any, caller models.Identity) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if caller != "" {
		req.Header.Set(auth.IdentityHeader, string(caller))
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
