// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questions handles the trivia working set: validation, import, and
the shuffled round order.

# Import Contract

Parse accepts a JSON array of loosely-shaped objects and normalizes each
one independently; malformed entries are skipped rather than failing the
batch:

	items, skipped, err := questions.Parse(data)

Accepted field spellings: q/question, explain/explanation. Options may be
an array or a comma/pipe-delimited string. The correct answer may be
given as correctIndex or as a "correct" label matched case-insensitively
against the options.

# Deck

A Deck holds the working set plus a shuffled active order consumed by
Next. Exhausting the order reshuffles and restarts. Replace and Append
correspond to the importer's two modes.
*/
package questions
