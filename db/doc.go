// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQLite schema creation.

# Usage

Call CreateSchema after opening the database:

	conn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil { ... }
	if err := db.CreateSchema(conn); err != nil { ... }

CreateSchema is idempotent (uses IF NOT EXISTS), so it is safe to run on
every startup.

# Schema

A single table backs the leaderboard:

	score(username TEXT PRIMARY KEY, points INTEGER, updated_at TIMESTAMP)

Points are constrained non-negative at the database level.
*/
package db
