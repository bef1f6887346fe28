// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/avolkova/quizboss/ledger"
	"github.com/avolkova/quizboss/middleware"
	"github.com/avolkova/quizboss/models"
	"github.com/avolkova/quizboss/registry"
)

type PollHandler struct {
	reg *registry.Registry
	led *ledger.Ledger
}

func NewPollHandler(reg *registry.Registry, led *ledger.Ledger) *PollHandler {
	return &PollHandler{reg: reg, led: led}
}

// StartPoll handles POST /poll/start
func (h *PollHandler) StartPoll(w http.ResponseWriter, r *http.Request) {
	var req models.StartPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PollID == "" || len(req.Options) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pollId and options required")
		return
	}

	if err := h.reg.Create(req.PollID, req.Options); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("poll started", "poll_id", req.PollID, "options", req.Options)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Vote handles POST /poll/vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	recognized, err := h.reg.Vote(req.PollID, req.Username, req.Text)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown pollId")
		return
	}

	if !recognized {
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{OK: false, Reason: "no vote parsed"})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{OK: true})
}

// FinishPoll handles POST /poll/finish
//
// Resolution is one-shot and consuming: the poll id is deleted before the
// response is written, so a second finish for the same id gets 400.
func (h *PollHandler) FinishPoll(w http.ResponseWriter, r *http.Request) {
	var req models.FinishPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pollId is required")
		return
	}

	correctIndex := -1
	if req.CorrectIndex != nil {
		correctIndex = *req.CorrectIndex
	}

	result, err := h.reg.Finish(req.PollID, correctIndex)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown pollId")
		return
	}

	// Credit correct voters durably. Failures here must not fail the
	// resolution the overlay is waiting on.
	credited := 0
	for _, user := range result.Winners {
		if _, err := h.led.Increment(user, 1); err != nil {
			slog.Error("failed to credit winner", "poll_id", req.PollID, "username", user, "error", err)
			continue
		}
		credited++
	}

	slog.Info("poll finished",
		"poll_id", req.PollID,
		"choice_idx", result.ChoiceIdx,
		"correct_index", correctIndex,
		"credited", credited,
	)

	middleware.JSONResponse(w, http.StatusOK, models.FinishPollResponse{OK: true, ChoiceIdx: result.ChoiceIdx})
}
