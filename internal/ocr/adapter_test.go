package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubEngine struct {
	name  string
	lines []Line
	err   error
	calls int
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Recognize(_ context.Context, _ string) ([]Line, error) {
	s.calls++
	return s.lines, s.err
}

func TestAdapter_FiltersLowConfidenceLines(t *testing.T) {
	eng := &stubEngine{name: "stub", lines: []Line{
		{Text: "TECH FEST 2026", Confidence: 0.95},
		{Text: "garbled noise", Confidence: 0.1},
		{Text: "Venue: Main Auditorium", Confidence: 0.8},
	}}
	a := NewAdapter(nil, eng)

	got := a.ExtractText(context.Background(), "poster.jpg")
	assert.Equal(t, "TECH FEST 2026\nVenue: Main Auditorium", got)
}

func TestAdapter_ThresholdIsExclusive(t *testing.T) {
	eng := &stubEngine{name: "stub", lines: []Line{{Text: "borderline", Confidence: LineConfidenceThreshold}}}
	a := NewAdapter(nil, eng)

	assert.Equal(t, "", a.ExtractText(context.Background(), "poster.jpg"))
}

func TestAdapter_FallsBackToNextEngine(t *testing.T) {
	broken := &stubEngine{name: "broken", err: errors.New("binary not found")}
	working := &stubEngine{name: "working", lines: []Line{{Text: "hello poster", Confidence: 0.9}}}
	a := NewAdapter(nil, broken, working)

	got := a.ExtractText(context.Background(), "poster.jpg")
	assert.Equal(t, "hello poster", got)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
}

func TestAdapter_EmptyResultTriesNextEngine(t *testing.T) {
	empty := &stubEngine{name: "empty"}
	working := &stubEngine{name: "working", lines: []Line{{Text: "hello poster", Confidence: 0.9}}}
	a := NewAdapter(nil, empty, working)

	assert.Equal(t, "hello poster", a.ExtractText(context.Background(), "poster.jpg"))
}

func TestAdapter_FirstEngineWinsStopsProbing(t *testing.T) {
	first := &stubEngine{name: "first", lines: []Line{{Text: "from first", Confidence: 0.9}}}
	second := &stubEngine{name: "second", lines: []Line{{Text: "from second", Confidence: 0.99}}}
	a := NewAdapter(nil, first, second)

	assert.Equal(t, "from first", a.ExtractText(context.Background(), "poster.jpg"))
	assert.Equal(t, 0, second.calls)
}

func TestAdapter_NoEngines(t *testing.T) {
	a := NewAdapter(nil)
	assert.Equal(t, "", a.ExtractText(context.Background(), "poster.jpg"))
}

func TestAdapter_AllEnginesFail(t *testing.T) {
	a := NewAdapter(nil,
		&stubEngine{name: "a", err: errors.New("boom")},
		&stubEngine{name: "b", err: errors.New("boom")},
	)
	assert.Equal(t, "", a.ExtractText(context.Background(), "poster.jpg"))
}
