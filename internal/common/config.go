package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	OCR        OCRConfig
	Classifier ClassifierConfig
	Analysis   AnalysisConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// OCRConfig holds text-extraction engine configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path
	TesseractLang string
	TessdataDir   string
	RemoteURL     string // optional HTTP OCR sidecar; empty disables it
	RemoteTimeout time.Duration
}

// ClassifierConfig holds zero-shot classifier configuration
type ClassifierConfig struct {
	URL          string // optional inference endpoint; empty -> rule engine only
	Timeout      time.Duration
	KeywordsPath string // optional YAML override for keyword tables
}

// AnalysisConfig holds per-request pipeline limits
type AnalysisConfig struct {
	Timeout time.Duration // wall-clock budget per poster analysis
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			RemoteURL:     getEnv("OCR_REMOTE_URL", ""),
			RemoteTimeout: getEnvAsDuration("OCR_REMOTE_TIMEOUT", 30*time.Second),
		},
		Classifier: ClassifierConfig{
			URL:          getEnv("CLASSIFIER_URL", ""),
			Timeout:      getEnvAsDuration("CLASSIFIER_TIMEOUT", 20*time.Second),
			KeywordsPath: getEnv("CLASSIFIER_KEYWORDS", ""),
		},
		Analysis: AnalysisConfig{
			Timeout: getEnvAsDuration("ANALYSIS_TIMEOUT", 60*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
