package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

const untitledEvent = "Untitled Event"

// titlePatterns run in order: explicit phrase shapes, then Title Case runs,
// then ALL-CAPS runs. Candidates containing field-label words are rejected
// so "Computer Science Date" never beats the actual banner text.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)((?:Introduction to|Workshop on|Seminar on|Conference on|Symposium on|Training on|Course on)\s+[A-Za-z0-9\s&\-:]+?)(?:\s+Speakers?:|\s+Date:|\s+Time:|\s+Venue:|\s+WHY|$)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+){2,})`),
	regexp.MustCompile(`([A-Z]{2,}(?:\s+[A-Z]{2,})+)`),
}

// skipLinePatterns mark label/metadata lines that can never be titles.
var skipLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^date:`),
	regexp.MustCompile(`^time:`),
	regexp.MustCompile(`^venue:`),
	regexp.MustCompile(`^location:`),
	regexp.MustCompile(`^organized`),
	regexp.MustCompile(`^contact:`),
	regexp.MustCompile(`^register`),
	regexp.MustCompile(`^speakers?:`),
	regexp.MustCompile(`^faculty`),
	regexp.MustCompile(`^sponsored by`),
	regexp.MustCompile(`^\d{1,2}[-/]`), // dates at line start
}

var labelWords = map[string]struct{}{
	"date": {}, "time": {}, "venue": {}, "location": {}, "contact": {},
	"register": {}, "registration": {}, "organized": {}, "organised": {},
	"sponsored": {}, "speaker": {}, "speakers": {}, "faculty": {},
}

var eventKeywords = []string{
	"workshop", "seminar", "conference", "symposium", "session",
	"training", "hackathon", "fest", "competition",
}

var reTrailingPunct = regexp.MustCompile(`[:\-,]+$`)

// ExtractTitle picks the most probable event title. It never fails; when
// neither the pattern phase nor line scoring finds anything it returns
// "Untitled Event".
func ExtractTitle(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return untitledEvent
	}

	// Phase 1: pattern match
	for _, pat := range titlePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) < 5 || len(candidate) > 100 {
				continue
			}
			if containsLabelWord(candidate) {
				continue
			}
			candidate = strings.TrimSpace(reTrailingPunct.ReplaceAllString(candidate, ""))
			if len(candidate) >= 5 {
				return candidate
			}
		}
	}

	// Phase 2: score the first lines
	type scored struct {
		score int
		line  string
	}
	var candidates []scored

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		lower := strings.ToLower(line)

		if matchesAny(skipLinePatterns, lower) {
			continue
		}
		if len(line) < 5 || len(line) > 100 {
			continue
		}

		score := 0

		// earlier lines are more likely to be the banner
		score += (10 - i) * 10

		switch {
		case len(line) >= 20 && len(line) <= 60:
			score += 30
		case len(line) >= 10 && len(line) <= 80:
			score += 20
		}

		switch {
		case isAllUpper(line):
			score += 40
		case isTitleCase(line):
			score += 30
		}

		wordCount := len(strings.Fields(line))
		switch {
		case wordCount >= 3 && wordCount <= 8:
			score += 25
		case wordCount >= 2 && wordCount <= 10:
			score += 15
		}

		for _, kw := range eventKeywords {
			if strings.Contains(lower, kw) {
				score += 20
				break
			}
		}

		candidates = append(candidates, scored{score, line})
	}

	if len(candidates) > 0 {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.score > best.score {
				best = c
			}
		}
		title := strings.TrimSpace(reTrailingPunct.ReplaceAllString(best.line, ""))
		if len(title) >= 5 {
			return title
		}
		return untitledEvent
	}

	// Last resort: first reasonably-sized line
	limit = len(lines)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		if len(lines[i]) >= 5 && len(lines[i]) <= 100 {
			return lines[i]
		}
	}

	return untitledEvent
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func containsLabelWord(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ":,.-")
		if _, ok := labelWords[w]; ok {
			return true
		}
	}
	return false
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsLetter(runes[0]) {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsLetter(r) && !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}
