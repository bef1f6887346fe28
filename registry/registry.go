// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/avolkova/quizboss/poll"
)

var ErrUnknownPoll = errors.New("unknown pollId")
var ErrTooFewOptions = errors.New("at least 2 options required")

// Result is the outcome of finishing a poll.
type Result struct {
	// ChoiceIdx is the majority option, ties broken uniformly at random.
	ChoiceIdx int
	// Winners are the users whose vote matched the round's correct index.
	// Empty when no valid correct index was supplied.
	Winners []string
	// Counts are the per-option totals at finish time.
	Counts []int
}

type entry struct {
	options []string
	votes   map[string]int
}

// Registry holds the authority's vote map for each active poll id.
// Finishing a poll is one-shot and consuming: the id is deleted and any
// later mutation or second finish fails with ErrUnknownPoll.
type Registry struct {
	mu    sync.Mutex
	polls map[string]*entry
	intn  func(int) int
}

func New() *Registry {
	return &Registry{
		polls: make(map[string]*entry),
		intn:  rand.IntN,
	}
}

// Create registers a poll id with its option labels. Re-creating an
// existing id discards its votes and starts fresh.
func (r *Registry) Create(pollID string, options []string) error {
	if pollID == "" {
		return errors.New("pollId required")
	}
	if len(options) < 2 {
		return ErrTooFewOptions
	}

	opts := make([]string, len(options))
	copy(opts, options)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[pollID] = &entry{
		options: opts,
		votes:   make(map[string]int),
	}
	return nil
}

// Vote parses text against the poll's options and records the user's
// vote, last write wins. The boolean reports whether a vote command was
// recognized; ErrUnknownPoll if the id is not active.
func (r *Registry) Vote(pollID, username, text string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.polls[pollID]
	if !ok {
		return false, ErrUnknownPoll
	}

	idx := poll.ParseVote(text, e.options)
	if idx < 0 || username == "" {
		return false, nil
	}
	e.votes[username] = idx
	return true, nil
}

// CountChat feeds one chat message into every active poll, mirroring a
// chat relay that cannot know which poll a message was meant for.
func (r *Registry) CountChat(username, text string) {
	if username == "" || text == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.polls {
		if idx := poll.ParseVote(text, e.options); idx >= 0 {
			e.votes[username] = idx
		}
	}
}

// Finish tallies the poll and deletes it. The majority option (uniform
// random tiebreak) is returned for visuals; winners are the users who
// voted correctIndex. An out-of-range correctIndex yields no winners but
// still resolves the poll.
func (r *Registry) Finish(pollID string, correctIndex int) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.polls[pollID]
	if !ok {
		return Result{}, ErrUnknownPoll
	}
	delete(r.polls, pollID)

	counts := make([]int, len(e.options))
	for _, idx := range e.votes {
		if idx >= 0 && idx < len(counts) {
			counts[idx]++
		}
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	tops := []int{}
	for i, c := range counts {
		if c == max {
			tops = append(tops, i)
		}
	}
	choice := tops[r.intn(len(tops))]

	var winners []string
	if correctIndex >= 0 && correctIndex < len(e.options) {
		for user, idx := range e.votes {
			if idx == correctIndex {
				winners = append(winners, user)
			}
		}
	}

	return Result{ChoiceIdx: choice, Winners: winners, Counts: counts}, nil
}

// Active returns the number of open polls.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}
