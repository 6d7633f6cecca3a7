package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rupeeroute/rupee-route/internal/common"
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

// AnthropicConfig holds settings for the Anthropic-backed Client.
type AnthropicConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int
	Temperature float64
}

// AnthropicClient implements Client against the Anthropic messages API.
// The HTTP client carries its own timeout, satisfying the contract that the
// capability enforces its own deadline.
type AnthropicClient struct {
	httpClient  *http.Client
	rateLimiter *rateLimiter
	apiKey      string
	model       string
	endpoint    string
	retryOpts   common.RetryOptions
	temperature float64
}

// NewAnthropicClient creates a Client backed by the Anthropic API.
func NewAnthropicClient(cfg AnthropicConfig) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required: %w", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-haiku-20240307"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &AnthropicClient{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    anthropicEndpoint,
		temperature: temperature,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Complete sends the request to Anthropic and returns the reply text.
func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return CompletionResponse{}, fmt.Errorf("rate limit error: %w", err)
	}

	var out CompletionResponse
	err := common.WithRetry(ctx, func() error {
		resp, err := c.complete(ctx, req)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		out = resp
		return nil
	}, c.retryOpts)

	if err != nil {
		return CompletionResponse{}, fmt.Errorf("completion failed: %w", err)
	}

	return out, nil
}

func (c *AnthropicClient) complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 150
	}

	// The Anthropic API takes the system prompt as a top-level field.
	var system string
	messages := make([]map[string]string, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			system = msg.Content
			continue
		}
		messages = append(messages, map[string]string{
			"role":    msg.Role,
			"content": msg.Content,
		})
	}

	requestBody := map[string]any{
		"model":       model,
		"max_tokens":  maxTokens,
		"temperature": c.temperature,
		"messages":    messages,
	}
	if system != "" {
		requestBody["system"] = system
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return CompletionResponse{}, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Content) == 0 {
		return CompletionResponse{}, fmt.Errorf("no content in response")
	}

	return CompletionResponse{Content: response.Content[0].Text}, nil
}

// Close stops background goroutines.
func (c *AnthropicClient) Close() error {
	c.rateLimiter.Close()
	return nil
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Role       string `json:"role"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Content    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
