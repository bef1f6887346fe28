// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package battle

import (
	"errors"
	"testing"
	"time"

	"github.com/avolkova/quizboss/poll"
)

// okNotifier acknowledges every poll start so sessions run in remote mode.
type okNotifier struct {
	votes int
}

func (n *okNotifier) PollStarted(pollID string, options []string) error { return nil }
func (n *okNotifier) VoteCast(pollID, username, text string)            { n.votes++ }

// stubFinisher scripts the authority's resolution response.
type stubFinisher struct {
	choice int
	err    error
	calls  int
}

func (f *stubFinisher) PollFinished(pollID string, correctIndex int) (int, error) {
	f.calls++
	return f.choice, f.err
}

func closedSession(t *testing.T, notifier poll.Notifier, votes map[string]string) *poll.Session {
	t.Helper()
	s := poll.NewSession(notifier)
	s.Open([]string{"Fact", "Myth"}, 12*time.Second)
	for user, text := range votes {
		if !s.RegisterVote(user, text) {
			t.Fatalf("vote %q by %q rejected", text, user)
		}
	}
	s.Close()
	return s
}

func TestResolve_NoVotesIsNoAnswer(t *testing.T) {
	r := NewResolver(nil)
	s := closedSession(t, nil, nil)

	if got := r.Resolve(s, 0); got != NoAnswer {
		t.Errorf("expected NoAnswer, got %d", got)
	}
}

func TestResolve_LocalMajority(t *testing.T) {
	r := NewResolver(nil)
	s := closedSession(t, nil, map[string]string{
		"alice": "!vote 1",
		"bob":   "!vote 1",
		"carol": "!vote 2",
	})

	if got := r.Resolve(s, 0); got != 0 {
		t.Errorf("expected majority index 0, got %d", got)
	}
}

func TestResolve_TiebreakStaysOnTiedSet(t *testing.T) {
	s := poll.NewSession(nil)
	s.Open([]string{"A", "B", "C"}, 12*time.Second)
	s.RegisterVote("u1", "!vote 1")
	s.RegisterVote("u2", "!vote 1")
	s.RegisterVote("u3", "!vote 1")
	s.RegisterVote("u4", "!vote 2")
	s.RegisterVote("u5", "!vote 2")
	s.RegisterVote("u6", "!vote 2")
	s.RegisterVote("u7", "!vote 3")
	s.Close()

	// Counts are [3 3 1]; only indexes 0 and 1 are candidates.
	r := NewResolver(nil)
	r.intn = func(n int) int {
		if n != 2 {
			t.Errorf("expected 2 tiebreak candidates, got %d", n)
		}
		return 1
	}

	if got := r.Resolve(s, -1); got != 1 {
		t.Errorf("expected tied pick 1, got %d", got)
	}
}

func TestResolve_DelegatesToAuthority(t *testing.T) {
	notifier := &okNotifier{}
	finisher := &stubFinisher{choice: 1}
	r := NewResolver(finisher)

	s := closedSession(t, notifier, map[string]string{"alice": "!vote 1"})

	if got := r.Resolve(s, 1); got != 1 {
		t.Errorf("expected delegated choice 1, got %d", got)
	}
	if finisher.calls != 1 {
		t.Errorf("expected one authority call, got %d", finisher.calls)
	}
}

func TestResolve_FallsBackOnAuthorityError(t *testing.T) {
	notifier := &okNotifier{}
	finisher := &stubFinisher{err: errors.New("authority down")}
	r := NewResolver(finisher)

	s := closedSession(t, notifier, map[string]string{
		"alice": "!vote 1",
		"bob":   "!vote 1",
	})

	if got := r.Resolve(s, 0); got != 0 {
		t.Errorf("expected local fallback to index 0, got %d", got)
	}
}

func TestResolve_FallsBackOnOutOfRangeChoice(t *testing.T) {
	notifier := &okNotifier{}
	finisher := &stubFinisher{choice: 9}
	r := NewResolver(finisher)

	s := closedSession(t, notifier, map[string]string{"alice": "!vote 1"})

	if got := r.Resolve(s, 0); got != 0 {
		t.Errorf("expected local fallback for bogus authority index, got %d", got)
	}
}

func TestResolve_LocalOnlySkipsAuthority(t *testing.T) {
	finisher := &stubFinisher{choice: 1}
	r := NewResolver(finisher)

	// nil notifier keeps the session local-only.
	s := closedSession(t, nil, map[string]string{"alice": "!vote 1"})

	if got := r.Resolve(s, 0); got != 0 {
		t.Errorf("expected local majority 0, got %d", got)
	}
	if finisher.calls != 0 {
		t.Errorf("local-only round must not call the authority, got %d calls", finisher.calls)
	}
}

func TestResolve_IsTerminal(t *testing.T) {
	r := NewResolver(nil)
	s := closedSession(t, nil, map[string]string{"alice": "!vote 1"})

	if got := r.Resolve(s, 0); got != 0 {
		t.Fatalf("first resolution failed: got %d", got)
	}
	if got := r.Resolve(s, 0); got != NoAnswer {
		t.Errorf("second resolution must yield NoAnswer, got %d", got)
	}
}

func TestResolve_OpenSessionIgnored(t *testing.T) {
	r := NewResolver(nil)
	s := poll.NewSession(nil)
	s.Open([]string{"Fact", "Myth"}, 12*time.Second)
	s.RegisterVote("alice", "!vote 1")

	if got := r.Resolve(s, 0); got != NoAnswer {
		t.Errorf("resolving an open session must be refused, got %d", got)
	}
	if s.Phase() != poll.PhaseOpen {
		t.Errorf("session phase must be untouched, got %q", s.Phase())
	}
}
