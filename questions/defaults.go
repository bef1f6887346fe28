// Copyright (c) 2025 Anna Volkova.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

// DefaultSet returns the built-in question set used until an import
// replaces it.
func DefaultSet() []Question {
	return []Question{
		{
			Text:         "Humans use only 10% of their brains.",
			Options:      []string{"Fact", "Myth"},
			CorrectIndex: 1,
			Explanation:  "Myth. Imaging shows we use virtually all parts of the brain.",
		},
		{
			Text:         "Drinking water helps prevent some kidney stones.",
			Options:      []string{"Fact", "Myth"},
			CorrectIndex: 0,
			Explanation:  "Fact. Hydration lowers risk for common stone types.",
		},
		{
			Text:         "Caffeine makes drinks 'not count' toward hydration.",
			Options:      []string{"Fact", "Myth"},
			CorrectIndex: 1,
			Explanation:  "Myth. Caffeine is mildly diuretic but fluids still count.",
		},
	}
}
