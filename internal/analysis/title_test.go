package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle_AllCapsBanner(t *testing.T) {
	text := "TECH FEST 2026 Date: March 15, 2026 Venue: Main Auditorium"
	assert.Equal(t, "TECH FEST", ExtractTitle(text))
}

func TestExtractTitle_PhrasePattern(t *testing.T) {
	text := "Workshop on Machine Learning Date: March 15, 2026"
	assert.Equal(t, "Workshop on Machine Learning", ExtractTitle(text))
}

func TestExtractTitle_RejectsLabelWordCandidates(t *testing.T) {
	// "Main Auditorium Organized" is a Title Case run but contains a
	// field label, so the ALL-CAPS banner must win.
	text := "ANNUAL HACKATHON Venue: Main Auditorium Organized by CSE"
	assert.Equal(t, "ANNUAL HACKATHON", ExtractTitle(text))
}

func TestExtractTitle_ScoresLinesWhenNoPatternMatches(t *testing.T) {
	text := "hackathon for beginners\njoin us now"
	assert.Equal(t, "hackathon for beginners", ExtractTitle(text))
}

func TestExtractTitle_SkipsLabelLines(t *testing.T) {
	text := "date: tomorrow no really\nregister here please\nspring carnival celebration"
	assert.Equal(t, "spring carnival celebration", ExtractTitle(text))
}

func TestExtractTitle_EmptyText(t *testing.T) {
	assert.Equal(t, "Untitled Event", ExtractTitle(""))
	assert.Equal(t, "Untitled Event", ExtractTitle("  \n \n"))
}

func TestExtractTitle_TooShortLines(t *testing.T) {
	assert.Equal(t, "Untitled Event", ExtractTitle("ab\ncd"))
}

func TestExtractTitle_StripsTrailingPunctuation(t *testing.T) {
	text := "grand annual science exhibition:\nmore details inside soon"
	assert.Equal(t, "grand annual science exhibition", ExtractTitle(text))
}
