package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/campusmemory/campus-events/internal/analysis"
	"github.com/campusmemory/campus-events/internal/classify"
	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/export"
	"github.com/campusmemory/campus-events/internal/ocr"
	"github.com/campusmemory/campus-events/internal/repository"
	"github.com/campusmemory/campus-events/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// OCR: tesseract first, remote sidecar as fallback when configured.
	engines := []ocr.Engine{
		ocr.NewTesseractEngine(ocr.TesseractConfig{
			Binary:      cfg.OCR.Tesseract,
			Lang:        cfg.OCR.TesseractLang,
			TessdataDir: cfg.OCR.TessdataDir,
			PSM:         6,
		}, logger),
	}
	if cfg.OCR.RemoteURL != "" {
		engines = append(engines, ocr.NewRemoteEngine(ocr.RemoteConfig{
			URL:     cfg.OCR.RemoteURL,
			Timeout: cfg.OCR.RemoteTimeout,
		}, logger))
	}
	adapter := ocr.NewAdapter(logger, engines...)

	tables := classify.DefaultKeywordTables()
	if cfg.Classifier.KeywordsPath != "" {
		tables, err = classify.LoadKeywordTables(cfg.Classifier.KeywordsPath)
		if err != nil {
			logger.Error("loading keyword tables", "path", cfg.Classifier.KeywordsPath, "error", err)
			os.Exit(2)
		}
	}
	var zeroShot classify.ZeroShot
	if cfg.Classifier.URL != "" {
		zeroShot = classify.NewHTTPZeroShot(classify.ZeroShotConfig{
			URL:     cfg.Classifier.URL,
			Token:   os.Getenv("CLASSIFIER_TOKEN"),
			Timeout: cfg.Classifier.Timeout,
		}, logger)
	}
	classifier := classify.NewClassifier(zeroShot, tables, logger)

	pipeline := analysis.NewPipeline(adapter, classifier, logger)

	events := repository.NewEventRepository(pool, logger)
	attendance := repository.NewAttendanceRepository(pool, logger)
	registrations := repository.NewRegistrationRepository(pool, logger)
	subUsers := repository.NewSubUserRepository(pool, logger)
	reports := export.NewService(events, attendance, logger)

	srv := server.New(server.Deps{
		Analyzer:        pipeline,
		Events:          events,
		Attendance:      attendance,
		Registrations:   registrations,
		SubUsers:        subUsers,
		Export:          reports,
		AnalysisTimeout: cfg.Analysis.Timeout,
	}, logger)

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.Start(cfg.Server.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
