package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmemory/campus-events/internal/classify"
)

type stubSource struct{ text string }

func (s stubSource) ExtractText(_ context.Context, _ string) string { return s.text }

type stubLabeler struct {
	category classify.Label
	school   classify.Label
}

func (s stubLabeler) Category(_ context.Context, _ string) classify.Label { return s.category }
func (s stubLabeler) School(_ context.Context, _ string) classify.Label   { return s.school }

const samplePoster = "TECH FEST 2026\n" +
	"Date: March 15, 2026\n" +
	"Time: 9:00 AM - 6:00 PM\n" +
	"Venue: Main Auditorium\n" +
	"Register by: March 10, 2026\n" +
	"Organized by: Computer Science Department\n" +
	"Contact: events@amity.edu\n" +
	"Ph: 9876543210"

func TestPipeline_FullPoster(t *testing.T) {
	p := NewPipeline(stubSource{text: samplePoster}, stubLabeler{
		category: classify.Label{Name: "Technical", Score: 0.9},
		school:   classify.Label{Name: "Amity School of Computer Science", Score: 0.85},
	}, nil)

	res := p.Analyze(context.Background(), "poster.jpg")

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, samplePoster, res.RawText)

	assert.Equal(t, "TECH FEST", res.ExtractedData.Title)
	assert.Equal(t, "Technical", res.ExtractedData.Category)
	assert.Equal(t, "Amity School of Computer Science", res.ExtractedData.School)
	assert.Equal(t, "2026-03-15", res.ExtractedData.Date)
	assert.Equal(t, "9:00 AM - 6:00 PM", res.ExtractedData.Time)
	assert.Equal(t, "Main Auditorium", res.ExtractedData.Location)
	assert.Equal(t, "Computer Science Department", res.ExtractedData.Organizer)
	assert.Equal(t, "2026-03-10", res.ExtractedData.RegistrationDeadline)
	assert.Equal(t, "events@amity.edu", res.ExtractedData.Email)
	assert.Equal(t, "9876543210", res.ExtractedData.Phone)

	assert.InDelta(t, (0.9+0.85+0.9+0.9+0.9+0.85)/6, res.Confidence.Overall, 1e-6)
	assert.False(t, res.NeedsReview)
	assert.Nil(t, res.Suggestions)
}

func TestPipeline_InsufficientText(t *testing.T) {
	p := NewPipeline(stubSource{text: ""}, stubLabeler{}, nil)

	res := p.Analyze(context.Background(), "blank.jpg")

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "sufficient text")
	assert.True(t, res.NeedsReview)
	assert.Empty(t, res.ExtractedData.Title)
}

func TestPipeline_BarelyTooShort(t *testing.T) {
	p := NewPipeline(stubSource{text: "tiny text"}, stubLabeler{}, nil)

	res := p.Analyze(context.Background(), "blurry.jpg")
	assert.False(t, res.Success)
}

func TestPipeline_LowConfidenceFlagsReview(t *testing.T) {
	p := NewPipeline(stubSource{text: "annual celebration evening for everyone"}, stubLabeler{
		category: classify.Label{Name: "Cultural", Score: 0.5},
		school:   classify.Label{Name: "Amity School of Fine Arts", Score: 0.5},
	}, nil)

	res := p.Analyze(context.Background(), "poster.png")

	require.True(t, res.Success)
	assert.True(t, res.NeedsReview)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Please review: category, school, date, time, location", res.Suggestions[0])
}

func TestPipeline_ReviewFlagTracksOverall(t *testing.T) {
	p := NewPipeline(stubSource{text: samplePoster}, stubLabeler{
		category: classify.Label{Name: "Technical", Score: 0.2},
		school:   classify.Label{Name: "Amity School of Engineering & Technology", Score: 0.2},
	}, nil)

	res := p.Analyze(context.Background(), "poster.jpg")

	require.True(t, res.Success)
	assert.Equal(t, res.Confidence.Overall < ReviewThreshold, res.NeedsReview)
}
