// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authority

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avolkova/quizboss/models"
)

var ErrNoChoice = errors.New("authority returned no usable choice")

// Client talks to the trusted authority over HTTP. Start and vote calls
// are best-effort: a failure degrades the round to local-only resolution
// and must never block round progression.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// PollStarted announces a new poll id and its options. An error means
// the caller should run this round local-only.
func (c *Client) PollStarted(pollID string, options []string) error {
	var resp models.OKResponse
	err := c.post("/poll/start", models.StartPollRequest{PollID: pollID, Options: options}, &resp)
	if err != nil {
		return err
	}
	if !resp.OK {
		return errors.New("poll start rejected")
	}
	return nil
}

// VoteCast forwards a raw chat vote, fire-and-forget. Failures are
// logged and swallowed.
func (c *Client) VoteCast(pollID, username, text string) {
	go func() {
		var resp models.VoteResponse
		if err := c.post("/poll/vote", models.VoteRequest{PollID: pollID, Username: username, Text: text}, &resp); err != nil {
			slog.Debug("vote forward failed", "poll_id", pollID, "error", err)
		}
	}()
}

// PollFinished asks the authority to resolve the poll. The authority
// credits correct voters durably and returns the majority option index
// for visuals.
func (c *Client) PollFinished(pollID string, correctIndex int) (int, error) {
	var resp models.FinishPollResponse
	err := c.post("/poll/finish", models.FinishPollRequest{PollID: pollID, CorrectIndex: &correctIndex}, &resp)
	if err != nil {
		return -1, err
	}
	if !resp.OK {
		return -1, ErrNoChoice
	}
	return resp.ChoiceIdx, nil
}

// Increment adds delta to a user's durable point total.
func (c *Client) Increment(username string, delta int) error {
	var resp models.IncrementResponse
	return c.post("/leaderboard/increment", models.IncrementRequest{Username: username, Delta: delta}, &resp)
}

// Top fetches the leaderboard, sorted by points descending.
func (c *Client) Top(limit int) ([]models.LeaderboardEntry, error) {
	u := c.baseURL + "/leaderboard/top?limit=" + url.QueryEscape(strconv.Itoa(limit))
	httpResp, err := c.http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("leaderboard request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard request returned %d", httpResp.StatusCode)
	}

	var resp models.TopResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpResp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", path, httpResp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	return nil
}
