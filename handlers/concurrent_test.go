// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

// TestConcurrentVoteSubmissions casts one vote per voter in parallel over HTTP
func TestConcurrentVoteSubmissions(t *testing.T) {
	const numVoters = 40

	voters := make([]models.Identity, numVoters)
	for i := range voters {
		voters[i] = models.Identity(fmt.Sprintf("0xvoter%02d", i))
	}
	s := testutil.VotingSession(t, voters, "Plant more trees", "Build a bike lane")
	handler := NewVotingHandler(s, testutil.GetTestConfig())

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i, voter := range voters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := map[string]uint64{"proposal_index": uint64(i % 3)}
			w := httptest.NewRecorder()
			handler.CastVote(w, testutil.MakeRequest("POST", "/votes", body, voter))
			if w.Code != http.StatusNoContent {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	if n := failures.Load(); n != 0 {
		t.Fatalf("%d votes failed", n)
	}

	proposals, err := s.ListProposals(voters[0])
	if err != nil {
		t.Fatal(err)
	}
	var total uint64
	for _, p := range proposals {
		total += p.VoteCount
	}
	if total != numVoters {
		t.Errorf("Expected %d votes, got %d", numVoters, total)
	}
	// 40 voters over 3 proposals: 14, 13, 13
	if proposals[0].VoteCount != 14 || proposals[1].VoteCount != 13 || proposals[2].VoteCount != 13 {
		t.Errorf("Unexpected counts: %d %d %d", proposals[0].VoteCount, proposals[1].VoteCount, proposals[2].VoteCount)
	}
}

// TestConcurrentDoubleVotes sends the same voter's ballot many times at once.
// Exactly one must win.
func TestConcurrentDoubleVotes(t *testing.T) {
	const attempts = 20

	s := testutil.VotingSession(t, []models.Identity{"0xvoter1"}, "Plant more trees")
	handler := NewVotingHandler(s, testutil.GetTestConfig())

	var wg sync.WaitGroup
	var accepted, conflicts atomic.Int32
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			handler.CastVote(w, testutil.MakeRequest("POST", "/votes", map[string]uint64{"proposal_index": 1}, "0xvoter1"))
			switch w.Code {
			case http.StatusNoContent:
				accepted.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	if accepted.Load() != 1 || conflicts.Load() != attempts-1 {
		t.Errorf("Expected 1 accepted and %d conflicts, got %d and %d", attempts-1, accepted.Load(), conflicts.Load())
	}

	p, err := s.GetProposal("0xvoter1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.VoteCount != 1 {
		t.Errorf("Expected 1 vote, got %d", p.VoteCount)
	}
}

// TestConcurrentCloseVoting races votes against the administrator closing
// the session. Every accepted vote is counted and no vote lands after the close.
func TestConcurrentCloseVoting(t *testing.T) {
	const numVoters = 30

	voters := make([]models.Identity, numVoters)
	for i := range voters {
		voters[i] = models.Identity(fmt.Sprintf("0xracer%02d", i))
	}
	s := testutil.VotingSession(t, voters, "Plant more trees")
	votes := NewVotingHandler(s, testutil.GetTestConfig())
	phases := NewPhaseHandler(s, testutil.GetTestConfig())

	var wg sync.WaitGroup
	var accepted atomic.Int32
	for _, voter := range voters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			votes.CastVote(w, testutil.MakeRequest("POST", "/votes", map[string]uint64{"proposal_index": 1}, voter))
			if w.Code == http.StatusNoContent {
				accepted.Add(1)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		phases.CloseVoting(w, testutil.MakeRequest("POST", "/phase/voting/close", nil, testutil.Admin))
	}()
	wg.Wait()

	p, err := s.GetProposal(voters[0], 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.VoteCount != uint64(accepted.Load()) {
		t.Errorf("Expected %d counted votes, got %d", accepted.Load(), p.VoteCount)
	}

	records := s.AuditLog().Records()
	var closeSeq uint64
	for _, rec := range records {
		if rec.Kind == models.KindPhaseChanged && rec.Next == models.PhaseVotingSessionEnded {
			closeSeq = rec.Seq
		}
	}
	if closeSeq == 0 {
		t.Fatal("Expected a close record")
	}
	for _, rec := range records {
		if rec.Kind == models.KindVoteCast && rec.Seq > closeSeq {
			t.Errorf("Vote record %d after close at %d", rec.Seq, closeSeq)
		}
	}
}
