package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/pkg/apperrors"
)

// Client is the boundary to the external generative-text service. It sends
// a plain text prompt and returns the generated text. Calls block until the
// service answers or the HTTP timeout fires; there is no retry policy.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config holds settings for the generative-text service
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HTTPClient implements Client over JSON/HTTP
type HTTPClient struct {
	config Config
	http   *http.Client
	logger zerolog.Logger
}

// NewHTTPClient creates a new generative-text client
func NewHTTPClient(config Config, logger zerolog.Logger) *HTTPClient {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &HTTPClient{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateText sends the prompt and returns the generated report text
func (c *HTTPClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.config.BaseURL == "" {
		return "", apperrors.NewUpstreamError("generative-text service is not configured")
	}

	payload, err := json.Marshal(generateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Generative-text service call failed")
		return "", apperrors.NewUpstreamError("generative-text service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUpstreamError("failed to read generative-text response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("Generative-text service returned an error")
		return "", apperrors.NewUpstreamError(fmt.Sprintf("generative-text service returned status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil || out.Text == "" {
		c.logger.Error().Err(err).Msg("Malformed generative-text response payload")
		return "", apperrors.NewUpstreamError("malformed generative-text response")
	}

	return out.Text, nil
}
