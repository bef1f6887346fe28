// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import "context"

type hubMsg interface{ isHubMsg() }

type subscribe struct {
	ID     string
	Outbox chan Event
}

type unsubscribe struct{ ID string }

type publish struct{ Ev Event }

type shutdown struct{}

func (subscribe) isHubMsg()   {}
func (unsubscribe) isHubMsg() {}
func (publish) isHubMsg()     {}
func (shutdown) isHubMsg()    {}

// Hub fans chat events out to subscribers (overlay websockets, the local
// battle runner). All state lives in a single goroutine fed by the inbox,
// so no locking is needed.
type Hub struct {
	inbox       chan hubMsg
	subscribers map[string]chan Event
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewHub(parent context.Context) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:       make(chan hubMsg, 64),
		subscribers: make(map[string]chan Event),
		ctx:         ctx,
		cancel:      cancel,
	}
	go h.loop()
	return h
}

// Publish broadcasts an event to all subscribers. Empty username or text
// is discarded without effect.
func (h *Hub) Publish(ev Event) {
	if ev.Username == "" || ev.Text == "" {
		return
	}
	select {
	case h.inbox <- publish{Ev: ev}:
	case <-h.ctx.Done():
	}
}

// Subscribe registers an outbox channel under id. The channel is closed
// on Unsubscribe or hub shutdown.
func (h *Hub) Subscribe(id string, outbox chan Event) {
	select {
	case h.inbox <- subscribe{ID: id, Outbox: outbox}:
	case <-h.ctx.Done():
		close(outbox)
	}
}

func (h *Hub) Unsubscribe(id string) {
	select {
	case h.inbox <- unsubscribe{ID: id}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) Shutdown() {
	select {
	case h.inbox <- shutdown{}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case subscribe:
				h.subscribers[msg.ID] = msg.Outbox

			case unsubscribe:
				if ch, ok := h.subscribers[msg.ID]; ok {
					close(ch)
					delete(h.subscribers, msg.ID)
				}

			case publish:
				for id, ch := range h.subscribers {
					select {
					case ch <- msg.Ev:
						// ok
					default:
						// Subscriber is slow/full - drop them.
						close(ch)
						delete(h.subscribers, id)
					}
				}

			case shutdown:
				h.closeAll()
				h.cancel()
				return
			}
		}
	}
}

func (h *Hub) closeAll() {
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}
