// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avolkova/quizboss/ledger"
	"github.com/avolkova/quizboss/middleware"
	"github.com/avolkova/quizboss/models"
)

type LeaderboardHandler struct {
	led *ledger.Ledger
}

func NewLeaderboardHandler(led *ledger.Ledger) *LeaderboardHandler {
	return &LeaderboardHandler{led: led}
}

// Increment handles POST /leaderboard/increment
func (h *LeaderboardHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req models.IncrementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username required")
		return
	}
	if req.Delta == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "delta required")
		return
	}

	points, err := h.led.Increment(req.Username, req.Delta)
	if err != nil {
		slog.Error("failed to increment points", "username", req.Username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("points incremented", "username", req.Username, "delta", req.Delta, "points", points)

	middleware.JSONResponse(w, http.StatusOK, models.IncrementResponse{
		OK:       true,
		Username: req.Username,
		Points:   points,
	})
}

// Top handles GET /leaderboard/top?limit=N
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	entries, err := h.led.Top(limit)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TopResponse{Data: entries})
}
