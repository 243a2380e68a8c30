// Package vision recognizes text on contract scans through a remote
// document-text-detection service. The client speaks the JSON REST
// surface directly; the adapter flattens the structural annotation into
// the entity types the extraction chain consumes.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/internal/common"
	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// ErrNoText is returned when the service answered successfully but
// found no text on the image.
var ErrNoText = errors.New("no text detected")

// Result is the recognition outcome for a single image. Confidence is
// the mean of per-word confidences, zero when no words were detected.
type Result struct {
	Text       string
	Confidence float64
	Blocks     []entity.PageBlock
}

// Recognizer turns one image file into recognized text. Implementations
// must be safe for concurrent use.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (Result, error)
}

// Client calls the annotate endpoint over HTTPS. The zero value is not
// usable; build one with NewClient.
type Client struct {
	endpoint      string
	apiKey        string
	languageHints []string
	httpClient    *http.Client
	logger        *slog.Logger
}

func NewClient(cfg common.VisionConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		languageHints: cfg.LanguageHints,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

// Recognize reads the image at imagePath, submits it for document text
// detection and aggregates the annotation into a Result.
func (c *Client) Recognize(ctx context.Context, imagePath string) (Result, error) {
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return Result{}, fmt.Errorf("read image: %w", err)
	}

	ann, err := c.annotate(ctx, raw)
	if err != nil {
		return Result{}, err
	}
	if ann == nil || ann.Text == "" {
		return Result{}, ErrNoText
	}
	return buildResult(ann), nil
}

// annotate posts a single-image request and decodes the annotation.
func (c *Client) annotate(ctx context.Context, image []byte) (*TextAnnotation, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body := annotateRequest{
		Requests: []imageRequest{{
			Image:    imagePayload{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []feature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}
	if len(c.languageHints) > 0 {
		body.Requests[0].ImageContext = &imageContext{LanguageHints: c.languageHints}
	}

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := c.endpoint
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("vision.request", "req_id", reqID, "image_bytes", len(image))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("vision.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError("VISION_UNAVAILABLE", "annotate request failed", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("vision.body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Debug("vision.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, common.NewAppError("VISION_HTTP_ERROR",
			fmt.Sprintf("annotate returned status %d", resp.StatusCode), common.ErrInternal)
	}

	var decoded annotateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Responses) == 0 {
		return nil, nil
	}
	first := decoded.Responses[0]
	if first.Error != nil {
		return nil, common.NewAppError("VISION_API_ERROR", first.Error.Message, common.ErrInternal)
	}
	return first.FullTextAnnotation, nil
}
