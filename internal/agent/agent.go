// Package agent wraps a single decision exchange with the reasoning agent:
// conversation history plus the current tool schemas go in, a typed decision
// comes out. It is the one place where transport failures and malformed tool
// arguments are translated into data the orchestrator can render.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neves/zen-bridge/internal/ai"
	"github.com/neves/zen-bridge/internal/tools"
)

// Agent binds a provider to a snapshot of tool schemas. The snapshot is
// fixed at construction: rebuild the agent whenever the registry changes so
// the model never decides against a stale tool set.
type Agent struct {
	provider ai.Provider
	model    string
	schemas  []tools.Schema
}

// New creates an agent bound to the given schema snapshot.
func New(provider ai.Provider, model string, schemas []tools.Schema) *Agent {
	return &Agent{
		provider: provider,
		model:    model,
		schemas:  schemas,
	}
}

// Schemas returns the bound schema snapshot.
func (a *Agent) Schemas() []tools.Schema {
	return a.schemas
}

// Decide runs one exchange: history plus the new user input are sent to the
// provider together with the bound tool schemas. The caller's history slice
// is never mutated; committing the turn is the orchestrator's job.
func (a *Agent) Decide(ctx context.Context, userInput string, history []ai.Message) ai.Decision {
	messages := make([]ai.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, ai.Message{Role: "user", Content: userInput})

	resp, err := a.provider.Chat(ctx, ai.ChatRequest{
		Model:    a.model,
		Messages: messages,
		Tools:    a.schemas,
	})
	if err != nil {
		return ai.Decision{
			Type: ai.DecisionError,
			Err:  fmt.Sprintf("Error processing request: %v", err),
		}
	}

	if len(resp.ToolCalls) == 0 {
		return ai.Decision{
			Type:    ai.DecisionReply,
			Content: resp.Content,
		}
	}

	invocations := make([]ai.Invocation, 0, len(resp.ToolCalls))
	for _, call := range resp.ToolCalls {
		args, err := parseArguments(call.Arguments)
		if err != nil {
			// A payload that does not parse as the declared argument
			// shape fails the whole decision; no partial recovery.
			return ai.Decision{
				Type: ai.DecisionError,
				Err:  fmt.Sprintf("Error processing request: bad arguments for tool %s: %v", call.Name, err),
			}
		}
		invocations = append(invocations, ai.Invocation{
			CallID: call.ID,
			Name:   call.Name,
			Args:   args,
		})
	}

	return ai.Decision{
		Type:        ai.DecisionToolCalls,
		Content:     resp.Content,
		Invocations: invocations,
	}
}

func parseArguments(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return map[string]interface{}{}, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	return args, nil
}
