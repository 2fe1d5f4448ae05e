package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDescription_KeepsProseDropsFields(t *testing.T) {
	text := "TECH FEST 2026. Join us for an exciting day of technology and innovation. Date: March 15, 2026 Venue: Main Hall"
	got := SynthesizeDescription(text, "TECH FEST 2026")
	assert.Equal(t, "Join us for an exciting day of technology and innovation.", got)
}

func TestSynthesizeDescription_MultipleSentences(t *testing.T) {
	text := "Learn the basics of robotics from industry experts. Build your first robot in a guided lab session. Certificates for all participants included."
	got := SynthesizeDescription(text, "Untitled Event")
	assert.Equal(t, "Learn the basics of robotics from industry experts. Build your first robot in a guided lab session. Certificates for all participants included.", got)
}

func TestSynthesizeDescription_SkipsShortAndLongFragments(t *testing.T) {
	long := strings.Repeat("x", 160)
	text := "ok. " + long + ". A proper sentence about the event goes here."
	got := SynthesizeDescription(text, "")
	assert.Equal(t, "A proper sentence about the event goes here.", got)
}

func TestSynthesizeDescription_NothingLeft(t *testing.T) {
	got := SynthesizeDescription("Date: March 15, 2026 Venue: Main Hall", "")
	assert.Equal(t, "No description available", got)
}

func TestSynthesizeDescription_TruncatesVeryLongProse(t *testing.T) {
	sentence := "This sentence pads the description well past the accumulation cap used by the synthesizer"
	text := strings.Join([]string{sentence, sentence, sentence, sentence, sentence, sentence}, ". ")
	got := SynthesizeDescription(text, "")
	assert.LessOrEqual(t, len(got), 400)
	assert.True(t, strings.HasSuffix(got, ".") || strings.HasSuffix(got, "..."))
}
