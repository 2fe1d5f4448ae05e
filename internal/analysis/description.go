package analysis

import (
	"regexp"
	"strings"
)

const noDescription = "No description available"

// descriptionStrip removes text already captured by dedicated fields so the
// description is what remains of the poster's prose.
var descriptionStrip = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Date|On):\s*[^\n]+`),
	regexp.MustCompile(`(?i)(?:Time|At|Timing):\s*[^\n]+`),
	regexp.MustCompile(`(?i)(?:Venue|Location|Place)[:\s]+[^\n]+`),
	regexp.MustCompile(`(?i)(?:Register|Registration)[:\s]+[^\n]+`),
	regexp.MustCompile(`(?i)(?:Contact|Email|Ph|Phone)[:\s]+[^\n]+`),
	regexp.MustCompile(`(?i)(?:Organized|Organised).{0,50}by.{0,50}(?:\n|$)`),
	regexp.MustCompile(`(?i)(?:Sponsored|Presented).{0,50}by.{0,50}(?:\n|$)`),
	regexp.MustCompile(`\b(?:VENUE|SPEAKERS?|FACULTY|ORGANIZED|SPONSORED)\b[^\n]*`),
}

var (
	reSentenceSplit = regexp.MustCompile(`[.\n]+`)
	reLabelStart    = regexp.MustCompile(`(?i)^(?:Date|Time|Venue|Location|Contact|Register|Organized)`)
	reSpaceRuns     = regexp.MustCompile(`\s+`)
)

// SynthesizeDescription rebuilds a human-readable description from whatever
// text the field extractor did not claim. The extracted title is dropped
// when it appears verbatim.
func SynthesizeDescription(text, title string) string {
	cleaned := text
	for _, pat := range descriptionStrip {
		cleaned = pat.ReplaceAllString(cleaned, "")
	}
	if title != "" && title != untitledEvent {
		cleaned = strings.ReplaceAll(cleaned, title, "")
	}

	var parts []string
	for _, sentence := range reSentenceSplit.Split(cleaned, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 10 || len(sentence) > 150 {
			continue
		}
		if reLabelStart.MatchString(sentence) {
			continue
		}
		parts = append(parts, sentence)
		if len(strings.Join(parts, " ")) > 200 {
			break
		}
	}

	if len(parts) > 0 {
		description := strings.Join(parts, ". ")
		description = strings.TrimSpace(reSpaceRuns.ReplaceAllString(description, " "))
		if description != "" && !strings.HasSuffix(description, ".") {
			description += "."
		}
		if len(description) > 400 {
			description = description[:397] + "..."
		}
		return description
	}

	// Fallback: lead of the cleaned text
	cleaned = strings.TrimSpace(reSpaceRuns.ReplaceAllString(cleaned, " "))
	if len(cleaned) > 300 {
		cleaned = cleaned[:297] + "..."
	}
	if len(cleaned) > 10 {
		return cleaned
	}
	return noDescription
}
