package ocr

import (
	"context"
	"log/slog"
	"strings"
)

// LineConfidenceThreshold drops recognized lines the engine itself is
// unsure about before they ever reach the analysis pipeline.
const LineConfidenceThreshold = 0.3

// Adapter tries engines in priority order and returns the first non-empty,
// confidence-filtered result. Engine errors are logged and swallowed; the
// pipeline sees either text or an empty string, never an engine error.
type Adapter struct {
	engines []Engine
	logger  *slog.Logger
}

func NewAdapter(logger *slog.Logger, engines ...Engine) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{engines: engines, logger: logger}
}

// ExtractText returns newline-joined text from the highest-priority engine
// that produced at least one line above the confidence threshold. Empty
// string means every engine failed or nothing was configured.
func (a *Adapter) ExtractText(ctx context.Context, imagePath string) string {
	if len(a.engines) == 0 {
		a.logger.Warn("ocr.no_engines_configured")
		return ""
	}

	for _, eng := range a.engines {
		lines, err := eng.Recognize(ctx, imagePath)
		if err != nil {
			a.logger.Warn("ocr.engine_failed", "engine", eng.Name(), "path", imagePath, "error", err)
			continue
		}

		kept := make([]string, 0, len(lines))
		for _, ln := range lines {
			if ln.Confidence > LineConfidenceThreshold && strings.TrimSpace(ln.Text) != "" {
				kept = append(kept, ln.Text)
			}
		}
		if len(kept) == 0 {
			a.logger.Info("ocr.engine_empty", "engine", eng.Name(), "raw_lines", len(lines))
			continue
		}

		a.logger.Info("ocr.extracted", "engine", eng.Name(), "lines", len(kept))
		return strings.Join(kept, "\n")
	}

	a.logger.Error("ocr.all_engines_failed", "path", imagePath)
	return ""
}
