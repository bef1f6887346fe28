// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "time"

// Clock is a countdown window with pause/resume. Expiry is detected by
// polling Expired from a periodic tick rather than a scheduled alarm, so
// pausing never has to cancel a timer: resuming simply shifts the
// deadline forward by the paused duration.
type Clock struct {
	now      func() time.Time
	endAt    time.Time
	running  bool
	paused   bool
	pausedAt time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Start begins a new countdown ending after d.
func (c *Clock) Start(d time.Duration) {
	c.endAt = c.now().Add(d)
	c.running = true
	c.paused = false
}

// Stop ends the countdown.
func (c *Clock) Stop() {
	c.running = false
	c.paused = false
}

// Pause freezes the countdown without losing remaining time.
func (c *Clock) Pause() {
	if !c.running || c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume shifts the deadline forward by exactly the paused duration, so
// the remaining seconds match what they were at Pause.
func (c *Clock) Resume() {
	if !c.running || !c.paused {
		return
	}
	c.endAt = c.endAt.Add(c.now().Sub(c.pausedAt))
	c.paused = false
}

// Remaining returns the whole seconds left, clamped to [0, 999]. While
// paused it reports the value frozen at Pause time.
func (c *Clock) Remaining() int {
	if !c.running {
		return 0
	}
	ref := c.now()
	if c.paused {
		ref = c.pausedAt
	}
	secs := int((c.endAt.Sub(ref) + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs > 999 {
		secs = 999
	}
	return secs
}

// Expired reports whether a running, unpaused countdown has passed its
// deadline.
func (c *Clock) Expired() bool {
	return c.running && !c.paused && !c.now().Before(c.endAt)
}

// Running reports whether a countdown is in progress (paused or not).
func (c *Clock) Running() bool {
	return c.running
}
