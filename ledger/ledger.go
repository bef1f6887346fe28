// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avolkova/quizboss/models"
)

var ErrEmptyUsername = errors.New("username required")
var ErrZeroDelta = errors.New("delta must be non-zero")

// Ledger is the durable per-user point store. Totals never go below zero
// and entries are never deleted.
type Ledger struct {
	db *sql.DB
}

func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Increment adds delta to a user's point total, creating the row on first
// credit, and returns the new total. The stored total is clamped at zero.
func (l *Ledger) Increment(username string, delta int) (int, error) {
	if username == "" {
		return 0, ErrEmptyUsername
	}
	if delta == 0 {
		return 0, ErrZeroDelta
	}

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRow(`SELECT points FROM score WHERE username = ?`, username).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to query score: %w", err)
	}

	next := current + delta
	if next < 0 {
		next = 0
	}

	_, err = tx.Exec(`
		INSERT INTO score (username, points, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET points = excluded.points, updated_at = excluded.updated_at
	`, username, next, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to upsert score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return next, nil
}

// Top returns up to limit entries ordered by points descending. The limit
// is clamped to [1, 500].
func (l *Ledger) Top(limit int) ([]models.LeaderboardEntry, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := l.db.Query(`
		SELECT username, points FROM score
		ORDER BY points DESC, username ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Points); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return entries, nil
}
