// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avolkova/quizboss/ledger"
	"github.com/avolkova/quizboss/models"
	"github.com/avolkova/quizboss/registry"
	"github.com/avolkova/quizboss/testutil"
)

func setupPollHandler(t *testing.T) (*PollHandler, *ledger.Ledger) {
	t.Helper()
	led := ledger.New(testutil.SetupTestDB(t))
	return NewPollHandler(registry.New(), led), led
}

func startPoll(t *testing.T, h *PollHandler, pollID string, options []string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.StartPoll(w, testutil.MakeRequest("POST", "/poll/start", models.StartPollRequest{
		PollID:  pollID,
		Options: options,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func castVote(t *testing.T, h *PollHandler, pollID, username, text string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.Vote(w, testutil.MakeRequest("POST", "/poll/vote", models.VoteRequest{
		PollID:   pollID,
		Username: username,
		Text:     text,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestStartPoll_Success(t *testing.T) {
	h, _ := setupPollHandler(t)

	w := httptest.NewRecorder()
	h.StartPoll(w, testutil.MakeRequest("POST", "/poll/start", models.StartPollRequest{
		PollID:  "p1",
		Options: []string{"Fact", "Myth"},
	}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.OKResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Error("expected ok response")
	}
}

func TestStartPoll_Validation(t *testing.T) {
	h, _ := setupPollHandler(t)

	tests := []struct {
		name string
		req  models.StartPollRequest
	}{
		{"missing pollId", models.StartPollRequest{Options: []string{"Fact", "Myth"}}},
		{"too few options", models.StartPollRequest{PollID: "p1", Options: []string{"Fact"}}},
		{"no options", models.StartPollRequest{PollID: "p1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.StartPoll(w, testutil.MakeRequest("POST", "/poll/start", tt.req, nil))
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestStartPoll_InvalidJSON(t *testing.T) {
	h, _ := setupPollHandler(t)

	w := httptest.NewRecorder()
	h.StartPoll(w, testutil.MakeRequest("POST", "/poll/start", "not an object", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestVote_UnknownPoll(t *testing.T) {
	h, _ := setupPollHandler(t)

	w := httptest.NewRecorder()
	h.Vote(w, testutil.MakeRequest("POST", "/poll/vote", models.VoteRequest{
		PollID:   "nope",
		Username: "alice",
		Text:     "!vote 1",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestVote_Unrecognized(t *testing.T) {
	h, _ := setupPollHandler(t)
	startPoll(t, h, "p1", []string{"Fact", "Myth"})

	w := httptest.NewRecorder()
	h.Vote(w, testutil.MakeRequest("POST", "/poll/vote", models.VoteRequest{
		PollID:   "p1",
		Username: "alice",
		Text:     "just chatting",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OK {
		t.Error("expected ok=false for unparsed text")
	}
	if resp.Reason != "no vote parsed" {
		t.Errorf("expected reason, got %q", resp.Reason)
	}
}

func TestVote_Recognized(t *testing.T) {
	h, _ := setupPollHandler(t)
	startPoll(t, h, "p1", []string{"Fact", "Myth"})

	w := httptest.NewRecorder()
	h.Vote(w, testutil.MakeRequest("POST", "/poll/vote", models.VoteRequest{
		PollID:   "p1",
		Username: "alice",
		Text:     "!fact",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Errorf("expected ok=true, got %+v", resp)
	}
}

func TestFinishPoll_CreditsWinners(t *testing.T) {
	h, led := setupPollHandler(t)
	startPoll(t, h, "p1", []string{"Fact", "Myth"})
	castVote(t, h, "p1", "alice", "!vote 2")
	castVote(t, h, "p1", "bob", "!vote 2")
	castVote(t, h, "p1", "carol", "!vote 1")

	correct := 1
	w := httptest.NewRecorder()
	h.FinishPoll(w, testutil.MakeRequest("POST", "/poll/finish", models.FinishPollRequest{
		PollID:       "p1",
		CorrectIndex: &correct,
	}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.FinishPollResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK || resp.ChoiceIdx != 1 {
		t.Errorf("expected choiceIdx 1, got %+v", resp)
	}

	entries, err := led.Top(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 credited users, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Points != 1 {
			t.Errorf("%s should have 1 point, got %d", e.Username, e.Points)
		}
		if e.Username != "alice" && e.Username != "bob" {
			t.Errorf("unexpected winner %q", e.Username)
		}
	}
}

func TestFinishPoll_OneShot(t *testing.T) {
	h, _ := setupPollHandler(t)
	startPoll(t, h, "p1", []string{"Fact", "Myth"})

	correct := 0
	finish := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.FinishPoll(w, testutil.MakeRequest("POST", "/poll/finish", models.FinishPollRequest{
			PollID:       "p1",
			CorrectIndex: &correct,
		}, nil))
		return w
	}

	testutil.AssertStatus(t, finish(), http.StatusOK)
	testutil.AssertStatus(t, finish(), http.StatusBadRequest)
}

func TestFinishPoll_MissingCorrectIndex(t *testing.T) {
	h, led := setupPollHandler(t)
	startPoll(t, h, "p1", []string{"Fact", "Myth"})
	castVote(t, h, "p1", "alice", "!vote 1")

	w := httptest.NewRecorder()
	h.FinishPoll(w, testutil.MakeRequest("POST", "/poll/finish", models.FinishPollRequest{
		PollID: "p1",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.FinishPollResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ChoiceIdx != 0 {
		t.Errorf("majority should still resolve, got %d", resp.ChoiceIdx)
	}

	entries, err := led.Top(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("no winners should be credited without a correct index, got %v", entries)
	}
}

func TestFinishPoll_Validation(t *testing.T) {
	h, _ := setupPollHandler(t)

	w := httptest.NewRecorder()
	h.FinishPoll(w, testutil.MakeRequest("POST", "/poll/finish", models.FinishPollRequest{}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	correct := 0
	h.FinishPoll(w, testutil.MakeRequest("POST", "/poll/finish", models.FinishPollRequest{
		PollID:       "never-started",
		CorrectIndex: &correct,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
