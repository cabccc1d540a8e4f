// Package orchestrator owns the tool registry and the conversation history,
// and runs the per-turn loop: ask the reasoning agent for a decision,
// dispatch any requested tool invocations, fold the results back into the
// conversation.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/neves/zen-bridge/internal/agent"
	"github.com/neves/zen-bridge/internal/ai"
	"github.com/neves/zen-bridge/internal/tools"
)

// NoToolsMessage is returned for any request made before a tool has been
// registered. A reported condition, not a fault: history stays untouched.
const NoToolsMessage = "No tools registered. Please add tools first."

const defaultTimeout = 30 * time.Second

// Config configures an Orchestrator.
type Config struct {
	Provider ai.Provider
	Model    string
	Logger   *zap.Logger

	// DecideTimeout bounds the decision call, ExecuteTimeout each tool
	// invocation. Zero means 30s.
	DecideTimeout  time.Duration
	ExecuteTimeout time.Duration
}

// Orchestrator processes one conversation. Turns are serialized: a second
// ProcessRequest blocks until the one in flight finishes. One instance per
// active conversation; nothing here is global.
type Orchestrator struct {
	mu       sync.Mutex
	registry *tools.Registry
	provider ai.Provider
	model    string
	agent    *agent.Agent // nil until a tool is registered
	history  []ai.Message
	logger   *zap.Logger

	decideTimeout  time.Duration
	executeTimeout time.Duration
}

// New creates an orchestrator with an empty registry and history.
func New(cfg Config) *Orchestrator {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DecideTimeout == 0 {
		cfg.DecideTimeout = defaultTimeout
	}
	if cfg.ExecuteTimeout == 0 {
		cfg.ExecuteTimeout = defaultTimeout
	}

	o := &Orchestrator{
		registry:       tools.NewRegistry(),
		provider:       cfg.Provider,
		model:          cfg.Model,
		logger:         cfg.Logger,
		decideTimeout:  cfg.DecideTimeout,
		executeTimeout: cfg.ExecuteTimeout,
	}
	o.registry.OnChange(o.rebindAgent)
	return o
}

// RegisterTool adds a tool. Registering an existing name replaces the prior
// tool. The agent is rebound to the new schema snapshot immediately, so the
// next decision always sees the current tool set.
func (o *Orchestrator) RegisterTool(t tools.Tool) error {
	if err := o.registry.Register(t); err != nil {
		return err
	}
	o.logger.Info("tool registered", zap.String("tool", t.Name()))
	return nil
}

// UnregisterTool removes a tool by name. Unknown names are a no-op.
func (o *Orchestrator) UnregisterTool(name string) {
	o.registry.Unregister(name)
	o.logger.Info("tool unregistered", zap.String("tool", name))
}

// ToolNames returns the registered tool names in sorted order.
func (o *Orchestrator) ToolNames() []string {
	return o.registry.Names()
}

// Schemas returns the current schema of every registered tool. This is the
// only shape external tool listings (MCP, HTTP) may depend on.
func (o *Orchestrator) Schemas() []tools.Schema {
	return o.registry.Schemas()
}

// rebindAgent rebuilds the agent against the registry's current schemas.
// Runs on every registry mutation, not per turn, so there is no staleness
// window between a mutation and the next decision.
func (o *Orchestrator) rebindAgent() {
	schemas := o.registry.Schemas()

	o.mu.Lock()
	defer o.mu.Unlock()
	if len(schemas) == 0 {
		o.agent = nil
		return
	}
	o.agent = agent.New(o.provider, o.model, schemas)
}

// ProcessRequest runs one full turn for the given user input and returns the
// assistant-visible text. History is only committed once a decision was
// successfully obtained, so a failed turn is safe to retry verbatim.
func (o *Orchestrator) ProcessRequest(ctx context.Context, userInput string) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.agent == nil {
		return NoToolsMessage
	}

	decideCtx, cancel := context.WithTimeout(ctx, o.decideTimeout)
	decision := o.agent.Decide(decideCtx, userInput, o.history)
	cancel()

	if decision.Type == ai.DecisionError {
		o.logger.Warn("decision failed", zap.String("error", decision.Err))
		return decision.Err
	}

	// Commit point: the user turn enters history only after a successful
	// decision.
	o.history = append(o.history, ai.Message{Role: "user", Content: userInput})

	if decision.Type == ai.DecisionReply {
		o.history = append(o.history, ai.Message{Role: "assistant", Content: decision.Content})
		return decision.Content
	}

	results := o.dispatch(ctx, decision.Invocations)
	formatted := formatResults(results)

	// History prefers the agent's own commentary when it supplied any; the
	// caller always gets the formatted results. The asymmetry is deliberate:
	// the UI shows concrete outcomes, history keeps the agent's narrative.
	historyContent := decision.Content
	if historyContent == "" {
		historyContent = formatted
	}
	o.history = append(o.history, ai.Message{Role: "assistant", Content: historyContent})

	return formatted
}

type invocationResult struct {
	tool   string
	result tools.Result
}

// dispatch executes the requested invocations in request order. An unknown
// tool yields a synthetic failure for that invocation and never aborts the
// rest of the turn.
func (o *Orchestrator) dispatch(ctx context.Context, invocations []ai.Invocation) []invocationResult {
	results := make([]invocationResult, 0, len(invocations))
	for _, inv := range invocations {
		tool, ok := o.registry.Get(inv.Name)
		if !ok {
			o.logger.Warn("unknown tool requested", zap.String("tool", inv.Name))
			results = append(results, invocationResult{
				tool:   inv.Name,
				result: tools.Errf("Tool %s not found", inv.Name),
			})
			continue
		}

		execCtx, cancel := context.WithTimeout(ctx, o.executeTimeout)
		result := tool.Execute(execCtx, inv.Args)
		cancel()

		o.logger.Debug("tool executed",
			zap.String("tool", inv.Name),
			zap.Bool("success", result.Success),
		)
		results = append(results, invocationResult{tool: inv.Name, result: result})
	}
	return results
}

// CallTool dispatches a single named invocation outside any conversation.
// This is the path a protocol server uses to expose registered tools.
func (o *Orchestrator) CallTool(ctx context.Context, name string, args map[string]interface{}) tools.Result {
	tool, ok := o.registry.Get(name)
	if !ok {
		return tools.Errf("Tool %s not found", name)
	}

	execCtx, cancel := context.WithTimeout(ctx, o.executeTimeout)
	defer cancel()
	return tool.Execute(execCtx, args)
}

// ClearHistory resets the conversation. Registered tools are unaffected.
// Must not be called while a turn is in flight; the turn mutex enforces it.
func (o *Orchestrator) ClearHistory() {
	o.mu.Lock()
	o.history = nil
	o.mu.Unlock()
}

// History returns a copy of the conversation so far.
func (o *Orchestrator) History() []ai.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]ai.Message, len(o.history))
	copy(out, o.history)
	return out
}

// formatResults renders the ordered invocation outcomes for display, one
// status line per tool plus a data or error line.
func formatResults(results []invocationResult) string {
	var formatted []string
	for _, r := range results {
		if r.result.Success {
			formatted = append(formatted, fmt.Sprintf("✅ %s: Success", r.tool))
			if hasData(r.result.Data) {
				formatted = append(formatted, fmt.Sprintf("Data: %v", r.result.Data))
			}
		} else {
			formatted = append(formatted, fmt.Sprintf("❌ %s: Failed", r.tool))
			formatted = append(formatted, fmt.Sprintf("Error: %s", r.result.Error))
		}
	}
	return strings.Join(formatted, "\n")
}

func hasData(data interface{}) bool {
	switch v := data.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []interface{}:
		return len(v) > 0
	case []map[string]interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}
