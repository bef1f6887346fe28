// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chat provides the chat event pipeline.

# Sources

Anything implementing Source emits (username, text) events:

  - Relay: dials an external chat-relay server over websocket
  - Simulator: a fake crowd emitting vote commands at a fixed rate

Events with an empty username or text never leave a source.

# Hub

Hub fans events out to subscribers (overlay websockets, the battle
runner). It runs as a single goroutine fed by a message channel; slow
subscribers are dropped rather than allowed to block the broadcast.
*/
package chat
