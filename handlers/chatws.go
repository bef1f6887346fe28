// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/avolkova/quizboss/chat"
	"github.com/avolkova/quizboss/middleware"
	"github.com/avolkova/quizboss/models"
	"github.com/avolkova/quizboss/registry"
)

type ChatHandler struct {
	hub *chat.Hub
	reg *registry.Registry
}

func NewChatHandler(hub *chat.Hub, reg *registry.Registry) *ChatHandler {
	return &ChatHandler{hub: hub, reg: reg}
}

// Message handles POST /chat/message: a relay or harness pushing one chat
// event in. The event is broadcast to overlay subscribers, and if any
// polls are active, counted as a vote in each of them.
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req models.ChatMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Empty events are discarded without effect, not an error.
	if req.Username == "" || req.Text == "" {
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{OK: false, Reason: "empty message"})
		return
	}

	h.hub.Publish(chat.Event{Username: req.Username, Text: req.Text})
	h.reg.CountChat(req.Username, req.Text)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Socket handles GET /chat/ws: overlays subscribe here and receive every
// chat event as JSON.
func (h *ChatHandler) Socket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // overlays are served cross-origin
	})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	out := make(chan chat.Event, 16)
	id := uuid.NewString()
	h.hub.Subscribe(id, out)
	defer h.hub.Unsubscribe(id)

	// Writer goroutine
	writeCtx, writeCancel := context.WithCancel(r.Context())
	defer writeCancel()
	go func() {
		for ev := range out {
			payload, _ := json.Marshal(models.ChatMessage{Username: ev.Username, Text: ev.Text})
			ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
			_ = conn.Write(ctx, websocket.MessageText, payload)
			cancel()
		}
	}()

	// Reader loop: overlays don't send anything meaningful, but reading
	// is how we notice the client going away.
	for {
		_, _, err := conn.Read(r.Context())
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			return
		}
	}
}
