// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const relayRedialDelay = 5 * time.Second

// Relay consumes chat events from an external chat-relay server over a
// websocket. Messages are JSON objects with username and text fields;
// anything else is skipped. The connection is re-dialed after errors
// until ctx is cancelled.
type Relay struct {
	url    string
	events chan Event
}

func NewRelay(ctx context.Context, url string) *Relay {
	r := &Relay{
		url:    url,
		events: make(chan Event, 32),
	}
	go r.run(ctx)
	return r
}

func (r *Relay) Events() <-chan Event {
	return r.events
}

func (r *Relay) run(ctx context.Context) {
	defer close(r.events)

	for {
		if err := r.consume(ctx); err != nil {
			slog.Warn("chat relay connection lost", "url", r.url, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(relayRedialDelay):
		}
	}
}

func (r *Relay) consume(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, r.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	slog.Info("chat relay connected", "url", r.url)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var msg struct {
			Username string `json:"username"`
			Text     string `json:"text"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Username == "" || msg.Text == "" {
			continue
		}

		select {
		case r.events <- Event{Username: msg.Username, Text: msg.Text}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
