package ai

// DecisionType discriminates the three possible outcomes of one exchange
// with the reasoning agent.
type DecisionType string

const (
	// DecisionReply is a plain textual answer with no tool calls.
	DecisionReply DecisionType = "reply"
	// DecisionToolCalls is a request to invoke one or more tools.
	DecisionToolCalls DecisionType = "tool_calls"
	// DecisionError means the exchange itself failed (transport, service
	// rejection, unparsable tool arguments).
	DecisionError DecisionType = "error"
)

// Invocation is one agent-requested tool call with its arguments already
// parsed into a structured mapping.
type Invocation struct {
	CallID string
	Name   string
	Args   map[string]interface{}
}

// Decision is the typed outcome of a single decide exchange. Produced fresh
// per turn, never stored.
type Decision struct {
	Type        DecisionType
	Content     string
	Invocations []Invocation
	Err         string
}
