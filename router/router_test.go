// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	return NewRouter(testutil.NewTestSession(t), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "quickly-vote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/ballots", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)

	// 400, 403, 404 and 409 are all handler responses; only 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/participants"},
		{"GET", "/participants/0xvoter1"},
		{"POST", "/phase/proposals/open"},
		{"POST", "/phase/proposals/close"},
		{"POST", "/phase/voting/open"},
		{"POST", "/phase/voting/close"},
		{"POST", "/tally"},
		{"POST", "/proposals"},
		{"GET", "/proposals"},
		{"GET", "/proposals/0"},
		{"POST", "/votes"},
		{"GET", "/session"},
		{"GET", "/winner"},
		{"GET", "/audit"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/proposals"},
		{"PUT", "/votes"},
		{"GET", "/tally"},
		{"POST", "/winner"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	s := testutil.VotingSession(t, []models.Identity{"0xvoter1"}, "Plant more trees")
	mux := NewRouter(s, testutil.GetTestConfig())

	t.Run("proposal index", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/proposals/1", nil, "0xvoter1"))
		testutil.AssertStatus(t, w, http.StatusOK)

		var p models.Proposal
		testutil.AssertJSON(t, w, &p)
		if p.Index != 1 || p.Description != "Plant more trees" {
			t.Errorf("Unexpected proposal: %+v", p)
		}
	})

	t.Run("participant identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/participants/0xvoter1", nil, "0xvoter1"))
		testutil.AssertStatus(t, w, http.StatusOK)

		var p models.Participant
		testutil.AssertJSON(t, w, &p)
		if p.Identity != "0xvoter1" || !p.IsRegistered {
			t.Errorf("Unexpected participant: %+v", p)
		}
	})
}
