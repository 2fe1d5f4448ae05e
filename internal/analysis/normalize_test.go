package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("TECH   FEST\n\t2026")
	assert.Equal(t, "TECH FEST 2026", got)
}

func TestNormalize_StripsDisallowedCharacters(t *testing.T) {
	got := Normalize("Register!! @ Hall #1 (free*)")
	assert.Equal(t, "Register @ Hall 1 free", got)
}

func TestNormalize_KeepsFieldPunctuation(t *testing.T) {
	got := Normalize("Date: 15/03/2026, Venue: Block-A. events@amity.edu")
	assert.Equal(t, "Date: 15/03/2026, Venue: Block-A. events@amity.edu", got)
}

func TestNormalize_PreservesCase(t *testing.T) {
	got := Normalize("Machine Learning WORKSHOP")
	assert.Equal(t, "Machine Learning WORKSHOP", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize("   \n\t "))
}
