// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the authority API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: server-side poll lifecycle (start, vote, finish)
  - LeaderboardHandler: durable point totals (increment, top)
  - ChatHandler: chat ingestion and overlay websocket fanout

# Poll Lifecycle

Polls are created by the overlay when a question round opens, collect
chat votes, and are consumed by a one-shot finish:

	POST /poll/start  → StartPoll (creates the vote map)
	POST /poll/vote   → Vote (parses and records one chat vote)
	POST /poll/finish → FinishPoll (tallies, credits correct voters,
	                    deletes the poll)

FinishPoll returns the majority option for overlay visuals; the durable
point credit goes to voters matching the round's correct index.

# Chat

	POST /chat/message → Message (broadcast + count into active polls)
	GET  /chat/ws      → Socket (subscribe an overlay to chat events)
*/
package handlers
