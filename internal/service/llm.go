package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jruth44/kaizen-nutrition/config"
)

const (
	anthropicVersion = "2023-06-01"

	completionMaxTokens   = 1000
	completionTemperature = 0.7
)

// LLMClient is the transport every model-backed feature goes through.
// One blocking call per request; retry and rate limiting are the
// transport's concern, not its callers'.
type LLMClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// LLMService talks to the Anthropic Messages API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates an LLMService from configuration. A missing
// API key is a configuration error: the caller should treat it as
// fatal at startup.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("anthropic API key is not configured")
	}

	return &LLMService{
		apiKey: cfg.AnthropicAPIKey,
		apiURL: cfg.AnthropicAPIURL,
		model:  cfg.AnthropicModel,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// message is a single turn sent to the Messages API.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest is the Messages API request body.
type completionRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

// Complete sends one system prompt plus one user prompt and returns
// the model's text response.
func (s *LLMService) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := completionRequest{
		Model:       s.model,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
		System:      system,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Anthropic-Version", anthropicVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Content) == 0 {
		return "", fmt.Errorf("no content in API response")
	}

	return result.Content[0].Text, nil
}
