package analysis

import (
	"regexp"
	"strings"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reDisallowed = regexp.MustCompile(`[^\w\s\-:,.\/@]`)
)

// Normalize collapses whitespace runs to single spaces and strips any
// character outside the allow-list (word characters, whitespace, and
// `- : , . / @`). Case is preserved.
func Normalize(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	text = reDisallowed.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
