// Package ai defines the optional completion capability injected into the
// classifier, plus a ready-made Anthropic implementation.
//
// The classifier only depends on the Client interface; tests substitute a
// deterministic fake. Implementations are responsible for their own timeout
// behavior — the classifier never enforces one.
package ai

import "context"

// Message is one role/content pair of a completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message role constants.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionRequest is a single completion call.
type CompletionRequest struct {
	Model     string
	Messages  []Message
	MaxTokens int
}

// CompletionResponse carries the raw reply text.
type CompletionResponse struct {
	Content string
}

// Client is the completion capability contract.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
