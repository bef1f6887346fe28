// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the authority's server-side vote maps.

Each active poll id maps to its option labels and a per-user vote map
(last write wins). Access is serialized by a mutex so each poll has a
single writer at a time.

Finish is a one-shot consuming operation: it tallies the votes, picks the
majority option with a uniform random tiebreak, collects the users whose
vote matched the supplied correct index, and deletes the poll. Any
further call for that id fails with ErrUnknownPoll — a resolved poll can
never be re-scored.
*/
package registry
