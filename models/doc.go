// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - StartPollRequest: pollId, options
  - VoteRequest: pollId, username, text
  - FinishPollRequest: pollId, correctIndex
  - IncrementRequest: username, delta
  - ChatMessageRequest: username, text

# Response Types

Types for JSON responses:

  - OKResponse: ok
  - VoteResponse: ok, reason
  - FinishPollResponse: ok, choiceIdx
  - IncrementResponse: ok, username, points
  - TopResponse: data
  - ErrorResponse: error, message

# Domain Types

  - LeaderboardEntry: username with durable point total
  - ChatMessage: one chat-relay event as seen by overlays

# Constants

Battle phase values:

	PhasePresenting = "presenting"
	PhaseLocked     = "locked"
	PhaseWon        = "won"
	PhaseLost       = "lost"
*/
package models
