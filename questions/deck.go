// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import "math/rand/v2"

// Deck is the working set of questions plus a shuffled active order
// consumed round by round. When the order is exhausted it reshuffles and
// restarts.
type Deck struct {
	items  []Question
	active []int // shuffled indexes into items
	pos    int
}

func NewDeck(items []Question) *Deck {
	d := &Deck{}
	d.Replace(items)
	return d
}

// Replace swaps in a new working set and reshuffles.
func (d *Deck) Replace(items []Question) {
	d.items = make([]Question, len(items))
	copy(d.items, items)
	d.Reshuffle()
}

// Append adds items to the working set and reshuffles.
func (d *Deck) Append(items []Question) {
	d.items = append(d.items, items...)
	d.Reshuffle()
}

// Reshuffle restarts the active order with a fresh permutation.
func (d *Deck) Reshuffle() {
	d.active = rand.Perm(len(d.items))
	d.pos = 0
}

// Next returns the next question in the active order, reshuffling and
// restarting when the order is exhausted.
func (d *Deck) Next() (Question, bool) {
	if len(d.items) == 0 {
		return Question{}, false
	}
	if d.pos >= len(d.active) {
		d.Reshuffle()
	}
	q := d.items[d.active[d.pos]]
	d.pos++
	return q, true
}

// Len returns the size of the working set.
func (d *Deck) Len() int {
	return len(d.items)
}
