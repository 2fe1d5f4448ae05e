package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Technical", Technical, true},
		{"technical", Technical, true},
		{" hackathon ", Technical, true},
		{"seminar", Workshop, true},
		{"fest", Cultural, true},
		{"virtual", Webinar, true},
		{"unknown thing", Technical, false},
		{"", Technical, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalizeCategory(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
	}
}

func TestCategoriesOrdering(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 7)
	assert.Equal(t, string(Technical), cats[0])
	assert.Equal(t, Technical, DefaultCategory())
}

func TestCanonicalizeSchool(t *testing.T) {
	got, ok := CanonicalizeSchool("amity school of law")
	assert.True(t, ok)
	assert.Equal(t, Law, got)

	got, ok = CanonicalizeSchool("Hogwarts")
	assert.False(t, ok)
	assert.Equal(t, EngineeringTechnology, got)
}

func TestSchoolsOrdering(t *testing.T) {
	schools := Schools()
	assert.Len(t, schools, 12)
	assert.Equal(t, string(EngineeringTechnology), schools[0])
}
