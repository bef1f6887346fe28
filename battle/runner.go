// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package battle

import (
	"context"
	"time"

	"github.com/avolkova/quizboss/chat"
	"github.com/avolkova/quizboss/questions"
)

// Poll interval for the round countdown. A periodic poll instead of one
// scheduled alarm keeps pause/resume and early closure composable.
const tickInterval = 250 * time.Millisecond

type runnerMsg interface{ isRunnerMsg() }

type ChatVote struct {
	Username string
	Text     string
}

type SetPaused struct{ Paused bool }

// Answer applies a manual answer, as from the overlay's own buttons.
type Answer struct{ Index int }

type GetView struct{ Reply chan View }

type Shutdown struct{}

func (ChatVote) isRunnerMsg()  {}
func (SetPaused) isRunnerMsg() {}
func (Answer) isRunnerMsg()    {}
func (GetView) isRunnerMsg()   {}
func (Shutdown) isRunnerMsg()  {}

// View is a read-only snapshot of the battle for rendering or tests.
type View struct {
	Phase     string
	Score     int
	BossHP    int
	PlayerHP  int
	Paused    bool
	Question  questions.Question
	Remaining int
	Counts    []int
}

// Runner drives a Machine on a single goroutine: clock ticks, deferred
// transitions and chat events are interleaved through one inbox, never
// concurrent. This is the machine's only entry point once started.
type Runner struct {
	inbox   chan runnerMsg
	machine *Machine
	ctx     context.Context
	cancel  context.CancelFunc

	// pending transition timer state
	effectC   <-chan time.Time
	effect    Effect
	timer     *time.Timer
	deadline  time.Time
	remaining time.Duration
}

// NewRunner starts the battle loop. If source is non-nil its events are
// pumped into the loop as chat votes.
func NewRunner(parent context.Context, machine *Machine, source chat.Source) *Runner {
	ctx, cancel := context.WithCancel(parent)
	r := &Runner{
		inbox:   make(chan runnerMsg, 64),
		machine: machine,
		ctx:     ctx,
		cancel:  cancel,
	}

	machine.Reset()

	if source != nil {
		go func() {
			for ev := range source.Events() {
				select {
				case r.inbox <- ChatVote{Username: ev.Username, Text: ev.Text}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go r.loop()
	return r
}

// Inbox exposes the runner's message channel for callers and tests.
func (r *Runner) Inbox() chan<- runnerMsg { return r.inbox }

// View fetches a snapshot, blocking until the loop serves it.
func (r *Runner) View() View {
	reply := make(chan View, 1)
	select {
	case r.inbox <- GetView{Reply: reply}:
	case <-r.ctx.Done():
		return View{}
	}
	select {
	case v := <-reply:
		return v
	case <-r.ctx.Done():
		return View{}
	}
}

func (r *Runner) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return

		case <-ticker.C:
			r.schedule(r.machine.Tick())

		case <-r.effectC:
			r.fire()

		case m := <-r.inbox:
			switch msg := m.(type) {
			case ChatVote:
				r.machine.RegisterChat(msg.Username, msg.Text)

			case Answer:
				r.schedule(r.machine.ApplyOutcome(msg.Index))

			case SetPaused:
				r.setPaused(msg.Paused)

			case GetView:
				msg.Reply <- View{
					Phase:     r.machine.Phase(),
					Score:     r.machine.Score(),
					BossHP:    r.machine.BossHP(),
					PlayerHP:  r.machine.PlayerHP(),
					Paused:    r.machine.Paused(),
					Question:  r.machine.Question(),
					Remaining: r.machine.Remaining(),
					Counts:    r.machine.Counts(),
				}

			case Shutdown:
				r.cancel()
				return
			}
		}
	}
}

// schedule arms the deferred-transition timer, replacing any pending one.
func (r *Runner) schedule(eff Effect) {
	if eff.Kind == EffectNone {
		return
	}
	r.stopTimer()
	r.effect = eff
	r.timer = time.NewTimer(eff.After)
	r.effectC = r.timer.C
	r.deadline = time.Now().Add(eff.After)
}

func (r *Runner) fire() {
	eff := r.effect
	r.effectC = nil
	r.effect = Effect{}

	switch eff.Kind {
	case EffectAdvance:
		r.machine.Advance()
	case EffectReset:
		r.machine.Reset()
	}
}

// setPaused freezes both the machine's clock and any pending transition
// timer, restoring the timer with its remaining delay on resume.
func (r *Runner) setPaused(p bool) {
	if p {
		if r.effectC != nil {
			r.remaining = time.Until(r.deadline)
			if r.remaining < 0 {
				r.remaining = 0
			}
			r.stopTimer()
			r.effectC = nil
		}
		r.machine.SetPaused(true)
		return
	}

	r.machine.SetPaused(false)
	if r.effect.Kind != EffectNone && r.effectC == nil {
		r.timer = time.NewTimer(r.remaining)
		r.effectC = r.timer.C
		r.deadline = time.Now().Add(r.remaining)
	}
}

func (r *Runner) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
