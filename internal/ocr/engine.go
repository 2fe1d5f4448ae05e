package ocr

import "context"

// Line is one recognized text line with the engine's confidence in [0,1].
type Line struct {
	Text       string
	Confidence float32
}

// Engine is a pluggable text-recognition backend. Implementations return
// ordered lines with per-line confidence; they may be slow but must respect
// the context deadline.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, imagePath string) ([]Line, error)
}
