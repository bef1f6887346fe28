// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package battle implements the quiz-boss-battle lifecycle.

# State Machine

A Machine moves through presenting → locked → presenting, or into the
terminal won/lost phases:

  - correct outcome: score +1, boss HP -25, player HP -10
  - wrong outcome (including NoAnswer): boss HP +10, player HP +25
  - boss at 0 → won; player at 100 → lost; both auto-reset after a
    banner delay

Health is clamped to [0, 100] and the score is monotonic. Reset restores
health and reshuffles the question order but preserves the score.

# Outcome Resolution

Resolver decides each round's winning option: NoAnswer when nobody
voted, the authority's resolution when the poll id is known server-side,
and otherwise the local majority with a uniform random tiebreak over
tied options.

# Runner

Runner drives a Machine on a single goroutine. Clock ticks (250ms),
deferred transitions, pause toggles and chat votes all flow through one
inbox, so mutations interleave but never race:

	m := battle.NewMachine(deck, client, client, 12*time.Second)
	r := battle.NewRunner(ctx, m, chatSource)
	r.Inbox() <- battle.SetPaused{Paused: true}
	v := r.View()

Pausing freezes both the round countdown and any pending transition
timer; resuming restores each with its remaining time.
*/
package battle
