// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package battle

import (
	"log/slog"
	"math/rand/v2"

	"github.com/avolkova/quizboss/poll"
)

// NoAnswer is the sentinel outcome for a round where no valid vote was
// cast. It never equals a valid correct index, so it always resolves as
// incorrect and never awards points.
const NoAnswer = -1

// Finisher resolves a poll on the authority's own vote tally, crediting
// correct voters as a side effect.
type Finisher interface {
	PollFinished(pollID string, correctIndex int) (int, error)
}

// Resolver turns a closed poll session into the round's outcome index.
// A nil Finisher always resolves locally.
type Resolver struct {
	finisher Finisher
	intn     func(int) int
}

func NewResolver(finisher Finisher) *Resolver {
	return &Resolver{finisher: finisher, intn: rand.IntN}
}

// Resolve decides the winning option for a closed session. Resolution is
// terminal: the session is marked resolved and its poll id retired. A
// second attempt on the same session yields NoAnswer.
func (r *Resolver) Resolve(s *poll.Session, correctIndex int) int {
	if s.Phase() != poll.PhaseClosed {
		slog.Warn("resolve on non-closed session ignored", "poll_id", s.ID(), "phase", string(s.Phase()))
		return NoAnswer
	}
	s.MarkResolved()

	if !s.HadAnyVote() {
		return NoAnswer
	}

	if id := s.RemoteID(); id != "" && r.finisher != nil {
		idx, err := r.finisher.PollFinished(id, correctIndex)
		if err == nil && idx >= 0 && idx < len(s.Options()) {
			return idx
		}
		if err != nil {
			slog.Warn("authority resolution failed, falling back to local tally", "poll_id", id, "error", err)
		}
	}

	return r.localMajority(s.Counts())
}

// localMajority picks the highest-count option, breaking ties uniformly
// at random over the tied set rather than favoring lower indexes.
func (r *Resolver) localMajority(counts []int) int {
	if len(counts) == 0 {
		return NoAnswer
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
	return tops[r.intn(len(tops))]
}
