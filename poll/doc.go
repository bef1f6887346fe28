// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the voting window for one question round.

# Components

  - Tally: one-vote-per-user counting with last-write-wins re-votes
  - Clock: countdown with pause/resume that preserves remaining time
  - Session: the round's voting window tying the two together
  - ParseVote: the two recognized chat command shapes

# Lifecycle

A Session moves through idle → open → closed → resolved:

	s := poll.NewSession(authorityClient)
	s.Open([]string{"Fact", "Myth"}, 12*time.Second)
	s.RegisterVote("viewer_001", "!vote 2")
	// ... Expired() polled from a periodic tick ...
	s.Close()
	// resolution happens in package battle, then s.MarkResolved()

Opening a session generates a fresh opaque poll id (uuid) and notifies
the authority best-effort. If that notification fails, the round runs
local-only: votes still count in the local tally, but resolution will not
delegate to the authority.

# Vote Commands

Two shapes are recognized, case-insensitive with surrounding whitespace
trimmed:

	!vote <N>    1-based option number
	!fact, !myth direct label aliases

Anything else is ignored.
*/
package poll
