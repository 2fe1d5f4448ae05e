package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/campusmemory/campus-events/internal/analysis"
	"github.com/campusmemory/campus-events/internal/classify"
	"github.com/campusmemory/campus-events/internal/ocr"
)

// analyze runs the poster pipeline against a single image and prints the
// result as JSON. No database required; handy for tuning keyword tables
// and inspecting OCR quality.
func main() {
	var (
		lang     = flag.String("lang", "eng", "tesseract language")
		bin      = flag.String("tesseract", "tesseract", "tesseract binary")
		remote   = flag.String("remote", "", "optional OCR sidecar URL")
		keywords = flag.String("keywords", "", "optional keyword table YAML override")
		timeout  = flag.Duration("timeout", 60*time.Second, "analysis budget")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage: analyze [flags] <poster-image>")
		os.Exit(2)
	}
	imagePath := flag.Arg(0)
	if _, err := os.Stat(imagePath); err != nil {
		logger.Error("cannot read poster", "path", imagePath, "error", err)
		os.Exit(2)
	}

	engines := []ocr.Engine{
		ocr.NewTesseractEngine(ocr.TesseractConfig{Binary: *bin, Lang: *lang, PSM: 6}, logger),
	}
	if *remote != "" {
		engines = append(engines, ocr.NewRemoteEngine(ocr.RemoteConfig{URL: *remote, Timeout: 30 * time.Second}, logger))
	}
	adapter := ocr.NewAdapter(logger, engines...)

	tables := classify.DefaultKeywordTables()
	if *keywords != "" {
		var err error
		tables, err = classify.LoadKeywordTables(*keywords)
		if err != nil {
			logger.Error("loading keyword tables", "path", *keywords, "error", err)
			os.Exit(2)
		}
	}
	classifier := classify.NewClassifier(nil, tables, logger)

	pipeline := analysis.NewPipeline(adapter, classifier, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := pipeline.Analyze(ctx, imagePath)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encoding result", "error", err)
		os.Exit(1)
	}
	if !result.Success {
		os.Exit(1)
	}
}
