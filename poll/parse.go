// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"regexp"
	"strconv"
	"strings"
)

var voteNumRe = regexp.MustCompile(`^!vote\s*(\d{1,2})\b`)
var factRe = regexp.MustCompile(`^!fact\b`)
var mythRe = regexp.MustCompile(`^!myth\b`)

// ParseVote extracts an option index from a raw chat message. Recognized
// shapes are "!vote N" (1-based, must be within the option count) and the
// aliases "!fact" / "!myth", which resolve by case-insensitive label
// lookup. Returns -1 when no valid vote is present.
func ParseVote(text string, options []string) int {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return -1
	}

	if m := voteNumRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1
		}
		return -1
	}

	if factRe.MatchString(lower) {
		return labelIndex(options, "fact")
	}
	if mythRe.MatchString(lower) {
		return labelIndex(options, "myth")
	}

	return -1
}

func labelIndex(options []string, label string) int {
	for i, o := range options {
		if strings.ToLower(o) == label {
			return i
		}
	}
	return -1
}
