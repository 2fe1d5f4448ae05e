package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 60*time.Second, cfg.Analysis.Timeout)
	assert.Empty(t, cfg.Classifier.URL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/events")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("ANALYSIS_TIMEOUT", "90s")
	t.Setenv("CLASSIFIER_URL", "http://localhost:8500/classify")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/events", cfg.Database.DSN)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddr)
	assert.Equal(t, int32(5), cfg.Database.MaxConns)
	assert.Equal(t, 90*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, "http://localhost:8500/classify", cfg.Classifier.URL)
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("ANALYSIS_TIMEOUT", "soonish")

	cfg := LoadConfig()
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 60*time.Second, cfg.Analysis.Timeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/events")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.DSN = "postgres://localhost/events"
	cfg.Server.HTTPAddr = ""
	assert.Error(t, cfg.Validate())
}
