package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/campusmemory/campus-events/constants"
)

// RemoteConfig configures the HTTP OCR sidecar engine.
type RemoteConfig struct {
	URL     string        // endpoint accepting POST image bytes
	Timeout time.Duration // http client timeout
	Retries uint          // attempts before giving up, default 3
}

// RemoteEngine posts the raw image to an OCR sidecar (an EasyOCR-style
// service) and decodes its line list. Transient failures are retried;
// anything left after retries surfaces as an engine error for the adapter
// to swallow.
type RemoteEngine struct {
	cfg        RemoteConfig
	httpClient *http.Client
	logger     *slog.Logger
}

type remoteLine struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
}

func NewRemoteEngine(cfg RemoteConfig, logger *slog.Logger) *RemoteEngine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries == 0 {
		cfg.Retries = 3
	}
	return &RemoteEngine{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (e *RemoteEngine) Name() string { return "remote" }

func (e *RemoteEngine) Recognize(ctx context.Context, imagePath string) ([]Line, error) {
	img, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	var lines []remoteLine
	err = retry.Do(
		func() error {
			body, err := e.post(ctx, img, filepath.Ext(imagePath))
			if err != nil {
				return err
			}
			lines = lines[:0]
			if err := json.Unmarshal(body, &lines); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode ocr response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(e.cfg.Retries),
		retry.Delay(200*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			e.logger.Warn("ocr.remote.retry", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]Line, 0, len(lines))
	for _, ln := range lines {
		out = append(out, Line{Text: ln.Text, Confidence: ln.Confidence})
	}
	return out, nil
}

func (e *RemoteEngine) post(ctx context.Context, img []byte, ext string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.URL, bytes.NewReader(img))
	if err != nil {
		return nil, err
	}
	if constants.NormalizeExt(ext) == "png" {
		req.Header.Set("Content-Type", "image/png")
	} else {
		req.Header.Set("Content-Type", "image/jpeg")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr sidecar http error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			e.logger.Warn("ocr response body close error", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ocr sidecar status %d: %s", resp.StatusCode, truncate(string(body), 512))
	}
	return body, nil
}
