package constants

import (
	"strings"
)

type Category string

const (
	Technical Category = "Technical"
	Workshop  Category = "Workshop"
	Cultural  Category = "Cultural"
	Sports    Category = "Sports"
	Career    Category = "Career"
	Awareness Category = "Awareness"
	Webinar   Category = "Webinar"
)

// allCategories is ordered; the rule-based classifier falls back to the
// first entry when no keyword matches, so ordering is load-bearing.
var allCategories = []Category{
	Technical,
	Workshop,
	Cultural,
	Sports,
	Career,
	Awareness,
	Webinar,
}

func Categories() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// DefaultCategory is the no-signal fallback label. Known bias: it always
// favors Technical.
func DefaultCategory() Category {
	return allCategories[0]
}

func CanonicalizeCategory(input string) (Category, bool) {
	if input == "" {
		return DefaultCategory(), false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"tech":        Technical,
		"hackathon":   Technical,
		"training":    Workshop,
		"seminar":     Workshop,
		"fest":        Cultural,
		"tournament":  Sports,
		"placement":   Career,
		"recruitment": Career,
		"campaign":    Awareness,
		"online":      Webinar,
		"virtual":     Webinar,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return DefaultCategory(), false
}
