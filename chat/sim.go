// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

var simCommands = []string{"!vote 1", "!vote 2", "!fact", "!myth"}

// Simulator is a fake chat crowd: a pool of named viewers emitting vote
// commands at a fixed rate. It stands in for a real chat relay during
// local testing.
type Simulator struct {
	events chan Event
	names  []string
}

// NewSimulator starts a simulator emitting ratePerSec messages per
// second until ctx is cancelled. commands may be nil to use the default
// vote command mix.
func NewSimulator(ctx context.Context, ratePerSec int, commands []string) *Simulator {
	if ratePerSec < 1 {
		ratePerSec = 1
	}
	if len(commands) == 0 {
		commands = simCommands
	}

	names := make([]string, 200)
	for i := range names {
		names[i] = fmt.Sprintf("Viewer_%03d", i+1)
	}

	s := &Simulator{
		events: make(chan Event, 32),
		names:  names,
	}

	interval := time.Second / time.Duration(ratePerSec)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(s.events)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ev := Event{
					Username: s.names[rand.IntN(len(s.names))],
					Text:     commands[rand.IntN(len(commands))],
				}
				select {
				case s.events <- ev:
				default:
					// Consumer is behind; drop rather than block the tick.
				}
			}
		}
	}()

	return s
}

func (s *Simulator) Events() <-chan Event {
	return s.events
}
