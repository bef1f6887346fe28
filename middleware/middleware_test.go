// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avolkova/quizboss/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, models.OKResponse{OK: true})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusBadRequest, "pollId is required")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bad Request") || !strings.Contains(body, "pollId is required") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/poll/vote", strings.NewReader(`{"pollId":"p1","username":"viewer","text":"!vote 1"}`))

	var v models.VoteRequest
	if err := ParseJSONBody(req, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.PollID != "p1" || v.Username != "viewer" || v.Text != "!vote 1" {
		t.Errorf("unexpected decode result: %+v", v)
	}
}

func TestParseJSONBody_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/poll/vote", strings.NewReader("{nope"))

	var v models.VoteRequest
	if err := ParseJSONBody(req, &v); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run on preflight")
	}))

	req := httptest.NewRequest("OPTIONS", "/poll/start", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

func TestCORS_PassesThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/leaderboard/top", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("expected next handler to run")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin without Origin header, got %q", got)
	}
}
