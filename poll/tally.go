// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

// Tally tracks one vote per user for the current voting window. A user's
// last vote wins: changing a vote moves the count from the old option to
// the new one, so Counts always equals a fold over the per-user map.
type Tally struct {
	votes  map[string]int
	counts []int
	hadAny bool
}

func NewTally(optionCount int) *Tally {
	t := &Tally{}
	t.Reset(optionCount)
	return t
}

// Reset clears all votes and sizes the counters for a new option set.
func (t *Tally) Reset(optionCount int) {
	if optionCount < 0 {
		optionCount = 0
	}
	t.votes = make(map[string]int)
	t.counts = make([]int, optionCount)
	t.hadAny = false
}

// Record registers user's vote for the given option. Re-votes for the
// same option are no-ops; a changed vote adjusts both counters. Votes
// outside the option range are rejected without mutating state. Returns
// whether the vote was accepted.
func (t *Tally) Record(user string, optionIndex int) bool {
	if user == "" || optionIndex < 0 || optionIndex >= len(t.counts) {
		return false
	}

	t.hadAny = true

	prev, seen := t.votes[user]
	if !seen {
		t.counts[optionIndex]++
		t.votes[user] = optionIndex
	} else if prev != optionIndex {
		t.counts[prev]--
		t.counts[optionIndex]++
		t.votes[user] = optionIndex
	}
	return true
}

// Counts returns a copy of the per-option vote totals.
func (t *Tally) Counts() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}

// HasAnyVote reports whether at least one vote was accepted since the
// last Reset.
func (t *Tally) HasAnyVote() bool {
	return t.hadAny
}

// VoterCount returns the number of distinct users who have voted.
func (t *Tally) VoterCount() int {
	return len(t.votes)
}
