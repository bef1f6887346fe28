// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the durable score ledger.

The ledger maps free-text usernames to non-negative point totals, backed
by the score table in SQLite. Only two capabilities are exposed:

	led := ledger.New(db)
	points, err := led.Increment("viewer_001", 1)
	entries, err := led.Top(50)

Increment creates an entry on first credit and clamps the stored total at
zero; entries are never deleted. Top returns entries sorted by points
descending, with the limit clamped to [1, 500].
*/
package ledger
