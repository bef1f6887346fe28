// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package battle

import (
	"log/slog"
	"time"

	"github.com/avolkova/quizboss/models"
	"github.com/avolkova/quizboss/poll"
	"github.com/avolkova/quizboss/questions"
)

// Damage and delay tuning for the boss battle.
const (
	bossDamageOnCorrect = 25
	playerHealOnCorrect = 10
	bossHealOnWrong     = 10
	playerDamageOnWrong = 25
	nextQuestionDelay   = 1700 * time.Millisecond
	winResetDelay       = 1400 * time.Millisecond
	loseResetDelay      = 1800 * time.Millisecond
)

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectAdvance
	EffectReset
)

// Effect is a deferred transition the caller must schedule: advance to
// the next question or reset the battle after a banner delay.
type Effect struct {
	Kind  EffectKind
	After time.Duration
}

// Machine is the question/boss/player lifecycle for one battle session.
// It is not safe for concurrent use; the Runner serializes access.
type Machine struct {
	deck     *questions.Deck
	session  *poll.Session
	resolver *Resolver

	phase    string
	score    int
	bossHP   int
	playerHP int
	paused   bool

	current     questions.Question
	hasQuestion bool

	window time.Duration
}

// NewMachine builds a battle over deck. notifier and finisher may be nil
// for a fully local battle. Call Reset to present the first question.
func NewMachine(deck *questions.Deck, notifier poll.Notifier, finisher Finisher, window time.Duration) *Machine {
	return &Machine{
		deck:     deck,
		session:  poll.NewSession(notifier),
		resolver: NewResolver(finisher),
		phase:    models.PhasePresenting,
		bossHP:   100,
		playerHP: 0,
		window:   window,
	}
}

// PresentNext advances to the next question in the active order and
// opens its voting window, discarding any prior session unresolved.
func (m *Machine) PresentNext() {
	q, ok := m.deck.Next()
	if !ok {
		slog.Error("battle has no questions to present")
		return
	}
	m.current = q
	m.hasQuestion = true
	m.phase = models.PhasePresenting
	m.session.Open(q.Options, m.window)

	slog.Info("question presented", "text", q.Text, "poll_id", m.session.ID())
}

// RegisterChat feeds one chat event into the active voting window.
func (m *Machine) RegisterChat(username, text string) bool {
	if m.paused || m.phase != models.PhasePresenting {
		return false
	}
	return m.session.RegisterVote(username, text)
}

// Tick polls the voting window for expiry, resolving the round when the
// countdown hits zero. Returns the transition effect to schedule, if any.
func (m *Machine) Tick() Effect {
	if !m.session.Expired() {
		return Effect{}
	}
	return m.ResolvePoll()
}

// ResolvePoll closes the voting window, derives the round's outcome and
// applies it.
func (m *Machine) ResolvePoll() Effect {
	if m.paused || m.phase != models.PhasePresenting {
		return Effect{}
	}
	m.session.Close()
	choice := m.resolver.Resolve(m.session, m.current.CorrectIndex)
	return m.ApplyOutcome(choice)
}

// ApplyOutcome compares the resolved choice against the round's correct
// index and applies score/health transitions. No-op unless presenting
// and unpaused.
func (m *Machine) ApplyOutcome(choice int) Effect {
	if m.paused || m.phase != models.PhasePresenting || !m.hasQuestion {
		return Effect{}
	}
	m.session.Close()

	correct := choice == m.current.CorrectIndex
	if correct {
		m.SetScore(m.score + 1)
		m.setBossHP(m.bossHP - bossDamageOnCorrect)
		m.setPlayerHP(m.playerHP - playerHealOnCorrect)

		slog.Info("round correct", "choice", choice, "score", m.score, "boss_hp", m.bossHP, "player_hp", m.playerHP)

		if m.bossHP <= 0 {
			m.phase = models.PhaseWon
			return Effect{Kind: EffectReset, After: winResetDelay}
		}
	} else {
		m.setBossHP(m.bossHP + bossHealOnWrong)
		m.setPlayerHP(m.playerHP + playerDamageOnWrong)

		slog.Info("round wrong", "choice", choice, "correct", m.current.CorrectIndex, "boss_hp", m.bossHP, "player_hp", m.playerHP)

		if m.playerHP >= 100 {
			m.phase = models.PhaseLost
			return Effect{Kind: EffectReset, After: loseResetDelay}
		}
	}

	m.phase = models.PhaseLocked
	return Effect{Kind: EffectAdvance, After: nextQuestionDelay}
}

// Advance moves from the locked feedback state to the next question.
func (m *Machine) Advance() {
	if m.paused || m.phase != models.PhaseLocked {
		return
	}
	m.PresentNext()
}

// Reset restores boss and player health, reshuffles the question order
// and presents the next question. The score carries over: it is a
// session-long running total, not a per-battle one.
func (m *Machine) Reset() {
	m.bossHP = 100
	m.playerHP = 0
	m.deck.Reshuffle()
	m.PresentNext()
}

// SetPaused freezes or resumes the voting window. Entering pause
// suppresses vote intake; leaving it shifts the window's deadline forward
// by the paused duration.
func (m *Machine) SetPaused(p bool) {
	if m.paused == p {
		return
	}
	m.paused = p
	if p {
		m.session.Pause()
	} else {
		m.session.Resume()
	}
}

// SetScore raises the score to n. The score is monotonic: attempts to
// lower it are clamped back to the current value.
func (m *Machine) SetScore(n int) {
	if n < m.score {
		n = m.score
	}
	if n < 0 {
		n = 0
	}
	m.score = n
}

func (m *Machine) setBossHP(pct int) {
	m.bossHP = clamp(pct, 0, 100)
}

func (m *Machine) setPlayerHP(pct int) {
	m.playerHP = clamp(pct, 0, 100)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func (m *Machine) Phase() string                { return m.phase }
func (m *Machine) Score() int                   { return m.score }
func (m *Machine) BossHP() int                  { return m.bossHP }
func (m *Machine) PlayerHP() int                { return m.playerHP }
func (m *Machine) Paused() bool                 { return m.paused }
func (m *Machine) Question() questions.Question { return m.current }
func (m *Machine) Remaining() int               { return m.session.Remaining() }
func (m *Machine) Counts() []int                { return m.session.Counts() }
