package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// TesseractConfig configures the tesseract engine.
type TesseractConfig struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
	PSM         int // e.g., 6 is good for uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default
}

// TesseractEngine shells out to tesseract in TSV mode and aggregates
// per-word confidences into per-line confidences.
type TesseractEngine struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

func NewTesseractEngine(cfg TesseractConfig, logger *slog.Logger) *TesseractEngine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &TesseractEngine{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) ([]Line, error) {
	args := []string{imagePath, "stdout", "-l", e.cfg.Lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV output carries a confidence column per word
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Binary, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}
	return parseTSVLines(string(out)), nil
}

// parseTSVLines groups TSV word rows by (block, paragraph, line) and emits
// one Line per group with the mean word confidence scaled to 0..1.
func parseTSVLines(tsv string) []Line {
	type acc struct {
		words []string
		sum   float64
		n     int
	}

	rows := strings.Split(tsv, "\n")
	var order []string
	groups := map[string]*acc{}

	for i, row := range rows {
		if i == 0 || row == "" {
			continue // skip header
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}
		text := strings.TrimSpace(cols[len(cols)-1])
		confStr := cols[10]
		if text == "" || confStr == "" || confStr == "-1" {
			continue
		}
		conf, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			continue
		}
		// block_num, par_num, line_num identify the visual line
		key := cols[2] + "/" + cols[3] + "/" + cols[4]
		g, ok := groups[key]
		if !ok {
			g = &acc{}
			groups[key] = g
			order = append(order, key)
		}
		g.words = append(g.words, text)
		g.sum += conf
		g.n++
	}

	lines := make([]Line, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.n == 0 {
			continue
		}
		lines = append(lines, Line{
			Text:       strings.Join(g.words, " "),
			Confidence: float32(g.sum / float64(g.n) / 100.0),
		})
	}
	return lines
}
