// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

// Event is one chat message as consumed by the battle core. Events with
// an empty username or text are discarded at the source.
type Event struct {
	Username string
	Text     string
}

// Source emits chat events. The channel is closed when the source shuts
// down.
type Source interface {
	Events() <-chan Event
}
