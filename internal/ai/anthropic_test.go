package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rupeeroute/rupee-route/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AnthropicClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAnthropicClient(AnthropicConfig{
		APIKey:     "test-key",
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	client.endpoint = server.URL
	return client
}

func TestNewAnthropicClient_RequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicClient(AnthropicConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestNewAnthropicClient_Defaults(t *testing.T) {
	client, err := NewAnthropicClient(AnthropicConfig{APIKey: "test-key"})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, "claude-3-haiku-20240307", client.model)
	assert.Equal(t, 0.3, client.temperature)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestComplete(t *testing.T) {
	var gotBody map[string]any
	var gotHeaders http.Header

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": `{"category": "TRAVEL", "confidence": 0.8}`},
			},
		})
	})

	resp, err := client.Complete(context.Background(), CompletionRequest{
		MaxTokens: 50,
		Messages: []Message{
			{Role: RoleSystem, Content: "categorize transactions"},
			{Role: RoleUser, Content: "Transaction: flight"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"category": "TRAVEL", "confidence": 0.8}`, resp.Content)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))

	// The system message travels as a top-level field, not in messages.
	assert.Equal(t, "categorize transactions", gotBody["system"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	first, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", first["role"])

	assert.Equal(t, "claude-3-haiku-20240307", gotBody["model"])
	assert.Equal(t, float64(50), gotBody["max_tokens"])
}

func TestComplete_ModelOverride(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "claude-3-5-sonnet-20241022",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "claude-3-5-sonnet-20241022", gotBody["model"])
}

func TestComplete_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	})

	_, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestComplete_EmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestComplete_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	}))
	defer server.Close()

	client, err := NewAnthropicClient(AnthropicConfig{
		APIKey:     "test-key",
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()
	client.endpoint = server.URL

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 2, attempts)
}
