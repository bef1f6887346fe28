// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/avolkova/quizboss/chat"
	"github.com/avolkova/quizboss/handlers"
	"github.com/avolkova/quizboss/ledger"
	"github.com/avolkova/quizboss/middleware"
	"github.com/avolkova/quizboss/registry"
)

func NewRouter(reg *registry.Registry, led *ledger.Ledger, hub *chat.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(reg, led)
	leaderboardHandler := handlers.NewLeaderboardHandler(led)
	chatHandler := handlers.NewChatHandler(hub, reg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle (overlay-driven)
	mux.HandleFunc("POST /poll/start", middleware.WithLogging(pollHandler.StartPoll))
	mux.HandleFunc("POST /poll/vote", middleware.WithLogging(pollHandler.Vote))
	mux.HandleFunc("POST /poll/finish", middleware.WithLogging(pollHandler.FinishPoll))

	// Leaderboard
	mux.HandleFunc("POST /leaderboard/increment", middleware.WithLogging(leaderboardHandler.Increment))
	mux.HandleFunc("GET /leaderboard/top", middleware.WithLogging(leaderboardHandler.Top))

	// Chat ingestion and overlay fanout
	mux.HandleFunc("POST /chat/message", middleware.WithLogging(chatHandler.Message))
	mux.HandleFunc("GET /chat/ws", chatHandler.Socket)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quizboss API v1"))
	})

	return mux
}
