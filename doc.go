// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quizboss server.

Quizboss is an interactive quiz-boss-battle overlay: chat viewers answer
true/false-style trivia with !vote commands, a boss character loses or
gains health based on the crowd's answer, and a trusted authority service
tallies votes server-side and keeps a durable leaderboard.

# Starting the Server

	go run . -p 3000 -d data/scores.db

Configuration comes from CLI flags or environment variables (a .env file
is loaded if present):

  - PORT (-p): server port (default: 3000)
  - DATABASE_PATH (-d): SQLite file for the leaderboard
  - POLL_SECONDS (-poll-seconds): voting window per question (default: 12)
  - CHAT_RELAY_URL (-relay): websocket URL of an external chat relay

With -simulate the server also runs a local battle session fed by fake
chat votes, useful for testing the full round lifecycle end to end.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, leaderboard, chat)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - registry: server-side per-poll vote maps
  - ledger: durable per-user point totals (SQLite)
  - db: schema creation
  - cliparse: configuration parsing

The battle core consumed by overlays lives in its own packages:

  - poll: vote tally, round clock, poll session, command parsing
  - battle: boss-battle state machine, outcome resolution, event loop
  - questions: question validation, import, shuffled round order
  - chat: chat event sources and fanout hub
  - authority: HTTP client for this server's poll/leaderboard API

See package documentation for each component.
*/
package main
