package classify

import (
	"context"
	"log/slog"

	"github.com/campusmemory/campus-events/constants"
)

// Classifier resolves category and school labels for poster text. When a
// zero-shot backend is configured it is tried first; any failure falls
// through to the keyword rule engine and is never surfaced to the caller.
type Classifier struct {
	zeroShot ZeroShot // nil -> rule engine only
	tables   KeywordTables
	logger   *slog.Logger
}

func NewClassifier(zeroShot ZeroShot, tables KeywordTables, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if len(tables.Categories) == 0 {
		tables.Categories = defaultCategoryTable()
	}
	if len(tables.Schools) == 0 {
		tables.Schools = defaultSchoolTable()
	}
	return &Classifier{zeroShot: zeroShot, tables: tables, logger: logger}
}

// Category classifies the event category.
func (c *Classifier) Category(ctx context.Context, text string) Label {
	if c.zeroShot != nil {
		label, err := c.zeroShot.Classify(ctx, text, constants.Categories())
		if err == nil {
			return label
		}
		c.logger.Warn("classify.category.zeroshot_failed", "error", err)
	}
	return classifyByRules(text, c.tables.Categories, categoryNorm)
}

// School classifies the organizing school.
func (c *Classifier) School(ctx context.Context, text string) Label {
	if c.zeroShot != nil {
		label, err := c.zeroShot.Classify(ctx, text, constants.Schools())
		if err == nil {
			return label
		}
		c.logger.Warn("classify.school.zeroshot_failed", "error", err)
	}
	return classifyByRules(text, c.tables.Schools, schoolNorm)
}
