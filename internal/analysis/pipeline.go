package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/campusmemory/campus-events/internal/classify"
)

// insufficientTextError is the one hard failure the pipeline reports. It is
// advice for the human uploader, not a stack trace.
const insufficientTextError = "Could not extract sufficient text from image. Please ensure:\n" +
	"  1. Image is clear and readable\n" +
	"  2. Text is in English\n" +
	"  3. Image format is supported (JPG, PNG)"

// TextSource turns a poster image into raw text, empty when every engine
// failed or none are configured.
type TextSource interface {
	ExtractText(ctx context.Context, imagePath string) string
}

// Labeler resolves category and school labels for normalized poster text.
type Labeler interface {
	Category(ctx context.Context, text string) classify.Label
	School(ctx context.Context, text string) classify.Label
}

// Pipeline sequences text extraction, normalization, field and title
// extraction, classification, description synthesis and confidence
// aggregation into one poster analysis. It is constructed once at startup
// and shared across requests; it holds no mutable state.
type Pipeline struct {
	source TextSource
	labels Labeler
	logger *slog.Logger
}

func NewPipeline(source TextSource, labels Labeler, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{source: source, labels: labels, logger: logger}
}

// Analyze runs the full pipeline for one poster image. It always returns a
// well-formed Result and never panics or errors past this boundary; the
// only failure mode is insufficient extracted text.
func (p *Pipeline) Analyze(ctx context.Context, imagePath string) Result {
	p.logger.Info("analyze.start", "path", imagePath)

	rawText := p.source.ExtractText(ctx, imagePath)
	if len(strings.TrimSpace(rawText)) < 10 {
		p.logger.Warn("analyze.insufficient_text", "path", imagePath, "raw_len", len(rawText))
		return Result{
			Success:     false,
			Error:       insufficientTextError,
			RawText:     rawText,
			NeedsReview: true,
		}
	}

	text := Normalize(rawText)

	category := p.labels.Category(ctx, text)
	school := p.labels.School(ctx, text)

	entities := ExtractEntities(text)
	title := ExtractTitle(text)
	description := SynthesizeDescription(text, title)

	fields := FieldConfidence(title, entities)
	overall := OverallConfidence(category.Score, school.Score, fields)

	p.logger.Info("analyze.ok",
		"path", imagePath,
		"title", title,
		"category", category.Name,
		"school", school.Name,
		"overall_confidence", overall,
		"needs_review", NeedsReview(overall),
	)

	return Result{
		Success: true,
		ExtractedData: ExtractedData{
			Title:                title,
			Category:             category.Name,
			School:               school.Name,
			Date:                 deref(entities.Date),
			Time:                 deref(entities.Time),
			Location:             deref(entities.Location),
			Organizer:            deref(entities.Organizer),
			RegistrationDeadline: deref(entities.Deadline),
			Description:          description,
			Email:                deref(entities.Email),
			Phone:                deref(entities.Phone),
		},
		Confidence: Confidence{
			Category: category.Score,
			School:   school.Score,
			Fields:   fields,
			Overall:  overall,
		},
		RawText:     rawText,
		NeedsReview: NeedsReview(overall),
		Suggestions: Suggestions(category.Score, school.Score, fields),
	}
}
