package ai

import (
	"context"

	"github.com/neves/zen-bridge/internal/tools"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolCall represents a tool call requested by the model. Arguments is the
// raw serialized payload as the service produced it; parsing it is the
// adapter's job, not the provider's.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatRequest represents a chat request to an AI provider
type ChatRequest struct {
	Model       string         `json:"model,omitempty"`
	Messages    []Message      `json:"messages"`
	Tools       []tools.Schema `json:"tools,omitempty"`
	Temperature float64        `json:"temperature,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
}

// ChatResponse represents a chat response from an AI provider
type ChatResponse struct {
	Content      string     `json:"content"`
	FinishReason string     `json:"finish_reason"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
}

// Provider interface that all AI providers must implement
type Provider interface {
	Name() string
	SupportsTools() bool
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
