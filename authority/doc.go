// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package authority is the HTTP client for the trusted authority service.

The client satisfies poll.Notifier (PollStarted, VoteCast) and
battle.Finisher (PollFinished), so it plugs directly into the round
lifecycle:

	client := authority.NewClient("http://localhost:3000")
	session := poll.NewSession(client)
	resolver := battle.NewResolver(client)

Degradation contract: PollStarted errors put the round in local-only
mode, VoteCast is fire-and-forget with swallowed failures, and a failed
PollFinished makes the resolver fall back to the local majority. No call
ever blocks round progression beyond the client's 5 second timeout.
*/
package authority
