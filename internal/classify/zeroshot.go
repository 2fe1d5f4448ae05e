package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ZeroShotConfig configures the HTTP zero-shot classifier client.
type ZeroShotConfig struct {
	URL     string
	Token   string // optional bearer token
	Timeout time.Duration
	Retries uint
}

// HTTPZeroShot calls a hosted zero-shot classification endpoint that takes
// text plus candidate labels and returns ranked labels with scores. The
// response is schema-validated before use so a malformed model reply reads
// as an engine failure, not a bogus classification.
type HTTPZeroShot struct {
	cfg        ZeroShotConfig
	httpClient *http.Client
	logger     *slog.Logger
}

type zeroShotRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float32 `json:"scores"`
}

const zeroShotResponseSchema = `{
  "type": "object",
  "required": ["labels", "scores"],
  "properties": {
    "labels": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "scores": {"type": "array", "minItems": 1, "items": {"type": "number", "minimum": 0, "maximum": 1}}
  }
}`

var zeroShotSchema = jsonschema.MustCompileString("zeroshot.json", zeroShotResponseSchema)

func NewHTTPZeroShot(cfg ZeroShotConfig, logger *slog.Logger) *HTTPZeroShot {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Retries == 0 {
		cfg.Retries = 2
	}
	return &HTTPZeroShot{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *HTTPZeroShot) Classify(ctx context.Context, text string, labels []string) (Label, error) {
	start := time.Now()

	req := zeroShotRequest{Inputs: text}
	req.Parameters.CandidateLabels = labels
	payload, err := json.Marshal(req)
	if err != nil {
		return Label{}, fmt.Errorf("marshal request: %w", err)
	}

	var body []byte
	err = retry.Do(
		func() error {
			var err error
			body, err = c.post(ctx, payload)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.Retries),
		retry.Delay(250*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("classify.zeroshot.retry", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return Label{}, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return Label{}, fmt.Errorf("decode classifier response: %w", err)
	}
	if err := zeroShotSchema.Validate(doc); err != nil {
		return Label{}, fmt.Errorf("classifier response schema: %w", err)
	}

	var resp zeroShotResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Label{}, fmt.Errorf("unmarshal classifier response: %w", err)
	}
	if len(resp.Labels) == 0 || len(resp.Scores) == 0 {
		return Label{}, fmt.Errorf("classifier returned no labels")
	}

	c.logger.Debug("classify.zeroshot.ok",
		"label", resp.Labels[0],
		"score", resp.Scores[0],
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Label{Name: resp.Labels[0], Score: resp.Scores[0]}, nil
}

func (c *HTTPZeroShot) post(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier http error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("classifier response body close error", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("classifier status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
