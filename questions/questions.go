// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	maxBatchBytes = 500_000
	maxBatchItems = 500
)

var ErrNotArray = errors.New("expected a JSON array")
var ErrTooLarge = errors.New("import too large")
var ErrNoValid = errors.New("no valid questions found")

// Question is one trivia item, immutable once loaded.
type Question struct {
	Text         string   `json:"q"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explain"`
}

// rawQuestion accepts the loose shapes the import contract allows:
// q/question, explain/explanation, options as an array or a comma- or
// pipe-delimited string, correctIndex directly or a "correct" label.
type rawQuestion struct {
	Q            string          `json:"q"`
	Question     string          `json:"question"`
	Options      json.RawMessage `json:"options"`
	CorrectIndex *int            `json:"correctIndex"`
	Correct      string          `json:"correct"`
	Explain      string          `json:"explain"`
	Explanation  string          `json:"explanation"`
}

// Normalize validates one raw item into a Question.
func normalize(raw rawQuestion) (Question, error) {
	text := strings.TrimSpace(raw.Q)
	if text == "" {
		text = strings.TrimSpace(raw.Question)
	}

	options, err := parseOptions(raw.Options)
	if err != nil {
		return Question{}, err
	}

	correctIndex := -1
	if raw.CorrectIndex != nil {
		correctIndex = *raw.CorrectIndex
	}
	if correctIndex < 0 {
		if label := strings.ToLower(strings.TrimSpace(raw.Correct)); label != "" {
			for i, o := range options {
				if strings.ToLower(o) == label {
					correctIndex = i
					break
				}
			}
		}
	}

	explain := strings.TrimSpace(raw.Explain)
	if explain == "" {
		explain = strings.TrimSpace(raw.Explanation)
	}

	if len(text) < 4 || len(text) > 300 {
		return Question{}, errors.New("question text must be 4-300 characters")
	}
	if len(options) < 2 || len(options) > 6 {
		return Question{}, errors.New("need 2-6 options")
	}
	for _, o := range options {
		if len(o) > 80 {
			return Question{}, errors.New("option too long")
		}
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return Question{}, errors.New("no valid correct answer")
	}
	if explain == "" || len(explain) > 300 {
		return Question{}, errors.New("explanation must be 1-300 characters")
	}

	return Question{
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explain,
	}, nil
}

func parseOptions(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, errors.New("options required")
	}

	var arr []string
	if err := json.Unmarshal(raw, &arr); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New("options must be an array or delimited string")
		}
		arr = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	}

	options := make([]string, 0, len(arr))
	for _, o := range arr {
		o = strings.TrimSpace(o)
		if o != "" {
			options = append(options, o)
		}
	}
	return options, nil
}

// Parse decodes a JSON array of raw question objects, normalizing each
// item independently. Malformed items are skipped, not fatal; the skipped
// count is returned alongside the valid questions. A batch with no valid
// items is an error.
func Parse(data []byte) ([]Question, int, error) {
	if len(data) > maxBatchBytes {
		return nil, 0, ErrTooLarge
	}

	var raws []rawQuestion
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, 0, ErrNotArray
	}
	if len(raws) > maxBatchItems {
		return nil, 0, fmt.Errorf("too many questions (max %d)", maxBatchItems)
	}

	items := make([]Question, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		q, err := normalize(raw)
		if err != nil {
			skipped++
			continue
		}
		items = append(items, q)
	}

	if len(items) == 0 {
		return nil, skipped, ErrNoValid
	}
	return items, skipped, nil
}
