// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags override environment variables, which override defaults:

	quizboss -p 3000 -d data/scores.db

or

	PORT=3000 DATABASE_PATH=data/scores.db quizboss

# Settings

  - PORT (-p): server port (default 3000)
  - DATABASE_PATH (-d): SQLite file for the score ledger (default data/scores.db)
  - POLL_SECONDS (-poll-seconds): voting window per question (default 12)
  - CHAT_RELAY_URL (-relay): websocket URL of an external chat relay; when
    empty no relay connection is made
  - -simulate / -sim-rate: run a local battle session fed by fake chat
    votes, at the given messages-per-second rate (default 6)
*/
package cliparse
