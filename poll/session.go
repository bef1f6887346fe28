// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseOpen     Phase = "open"
	PhaseClosed   Phase = "closed"
	PhaseResolved Phase = "resolved"
)

// Notifier mirrors votes to the external authority. PollStarted is
// best-effort: an error means this round runs in purely-local mode.
// VoteCast is fire-and-forget; implementations must not block.
type Notifier interface {
	PollStarted(pollID string, options []string) error
	VoteCast(pollID, username, text string)
}

// Session owns one round's voting window: it opens with a fresh poll id,
// accepts chat votes into its tally, and closes when the window expires.
// A nil Notifier keeps the session local-only.
type Session struct {
	id       string
	remote   bool // authority knows this poll id
	options  []string
	tally    *Tally
	clock    *Clock
	phase    Phase
	paused   bool
	notifier Notifier
}

func NewSession(notifier Notifier) *Session {
	return &Session{
		tally:    NewTally(0),
		clock:    NewClock(),
		phase:    PhaseIdle,
		notifier: notifier,
	}
}

// Open starts a new voting window over options, discarding any prior
// window without resolving it. The authority is notified best-effort; if
// that fails the round continues locally and no delegation happens at
// resolution time.
func (s *Session) Open(options []string, window time.Duration) {
	s.id = uuid.NewString()
	s.remote = false
	s.options = make([]string, len(options))
	copy(s.options, options)
	s.tally.Reset(len(options))
	s.clock.Start(window)
	s.phase = PhaseOpen
	s.paused = false

	if s.notifier != nil {
		if err := s.notifier.PollStarted(s.id, s.options); err != nil {
			slog.Warn("poll start not acknowledged, running local-only", "poll_id", s.id, "error", err)
		} else {
			s.remote = true
		}
	}
}

// RegisterVote parses text as a vote command and records it for user.
// Votes are ignored while paused or not open, and unparseable text is a
// no-op. Accepted votes are forwarded to the authority fire-and-forget;
// the local tally is updated regardless of forwarding outcome.
func (s *Session) RegisterVote(user, text string) bool {
	if s.phase != PhaseOpen || s.paused {
		return false
	}
	if user == "" || text == "" {
		return false
	}

	idx := ParseVote(text, s.options)
	if idx < 0 {
		return false
	}

	if !s.tally.Record(user, idx) {
		return false
	}

	if s.remote && s.notifier != nil {
		s.notifier.VoteCast(s.id, user, text)
	}
	return true
}

// Close stops the clock and rejects further votes.
func (s *Session) Close() {
	if s.phase != PhaseOpen {
		return
	}
	s.clock.Stop()
	s.phase = PhaseClosed
}

// MarkResolved retires the session's poll id. Must be called exactly
// once, after resolution.
func (s *Session) MarkResolved() {
	s.phase = PhaseResolved
}

// Pause freezes the clock and suppresses vote intake.
func (s *Session) Pause() {
	s.paused = true
	s.clock.Pause()
}

// Resume shifts the deadline forward by the paused duration and
// re-enables vote intake.
func (s *Session) Resume() {
	s.paused = false
	s.clock.Resume()
}

// Expired reports whether the open window has run out.
func (s *Session) Expired() bool {
	return s.phase == PhaseOpen && s.clock.Expired()
}

func (s *Session) Phase() Phase { return s.phase }

// ID returns the session's opaque poll id, empty before the first Open.
func (s *Session) ID() string { return s.id }

// RemoteID returns the poll id if the authority acknowledged it, or ""
// when the round is local-only.
func (s *Session) RemoteID() string {
	if !s.remote {
		return ""
	}
	return s.id
}

func (s *Session) Options() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Session) Counts() []int    { return s.tally.Counts() }
func (s *Session) HadAnyVote() bool { return s.tally.HasAnyVote() }
func (s *Session) Remaining() int   { return s.clock.Remaining() }
