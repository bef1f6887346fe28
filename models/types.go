// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Battle phase constants
const (
	PhasePresenting = "presenting"
	PhaseLocked     = "locked"
	PhaseWon        = "won"
	PhaseLost       = "lost"
)

// Request types

type StartPollRequest struct {
	PollID  string   `json:"pollId"`
	Options []string `json:"options"`
}

type VoteRequest struct {
	PollID   string `json:"pollId"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// CorrectIndex is a pointer so a missing field is distinguishable from 0.
type FinishPollRequest struct {
	PollID       string `json:"pollId"`
	CorrectIndex *int   `json:"correctIndex"`
}

type IncrementRequest struct {
	Username string `json:"username"`
	Delta    int    `json:"delta"`
}

type ChatMessageRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type VoteResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

type FinishPollResponse struct {
	OK        bool `json:"ok"`
	ChoiceIdx int  `json:"choiceIdx"`
}

type IncrementResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type TopResponse struct {
	Data []LeaderboardEntry `json:"data"`
}

// Domain types

type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type ChatMessage struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
