package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/neves/zen-bridge/internal/ai"
)

// MockProvider replays scripted responses for testing. Each Chat call
// consumes the next queued step and records the request it saw.
type MockProvider struct {
	mu       sync.Mutex
	steps    []mockStep
	Requests []ai.ChatRequest
}

type mockStep struct {
	resp *ai.ChatResponse
	err  error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// QueueReply queues a plain text response.
func (p *MockProvider) QueueReply(content string) {
	p.queue(&ai.ChatResponse{Content: content, FinishReason: "stop"}, nil)
}

// QueueToolCalls queues a response requesting the given tool calls,
// optionally with assistant commentary.
func (p *MockProvider) QueueToolCalls(content string, calls ...ai.ToolCall) {
	p.queue(&ai.ChatResponse{
		Content:      content,
		FinishReason: "tool_calls",
		ToolCalls:    calls,
	}, nil)
}

// QueueError queues a transport-level failure.
func (p *MockProvider) QueueError(err error) {
	p.queue(nil, err)
}

func (p *MockProvider) queue(resp *ai.ChatResponse, err error) {
	p.mu.Lock()
	p.steps = append(p.steps, mockStep{resp: resp, err: err})
	p.mu.Unlock()
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) SupportsTools() bool {
	return true
}

func (p *MockProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Requests = append(p.Requests, req)
	if len(p.steps) == 0 {
		return nil, fmt.Errorf("mock provider: no scripted response left")
	}

	step := p.steps[0]
	p.steps = p.steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.resp, nil
}
