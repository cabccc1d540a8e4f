package tools

import (
	"context"
	"fmt"
)

// Parameter types accepted by the reasoning agent's function-calling contract.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Parameter describes a single named argument of a tool.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Result is the uniform outcome of a tool execution. Exactly one of
// Data/Error is populated, depending on Success. Execute implementations
// must translate every internal failure into a failed Result instead of
// letting it escape.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK builds a successful result carrying data.
func OK(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Errf builds a failed result with a formatted error message.
func Errf(format string, args ...interface{}) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Recovered converts a panic inside an Execute implementation into a failed
// Result. Use with a named return:
//
//	func (t *X) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
//		defer tools.Recovered(&res)
//		...
//	}
func Recovered(res *Result) {
	if r := recover(); r != nil {
		*res = Errf("tool panicked: %v", r)
	}
}

// Tool is an executable capability the AI can call by name.
type Tool interface {
	// Name returns the tool name (used by the AI to call it).
	Name() string

	// Description returns a human-readable description for the AI.
	Description() string

	// Parameters returns the declared arguments in declaration order.
	Parameters() []Parameter

	// Execute runs the tool with the given arguments. It always returns a
	// Result, never panics and never reports failure any other way.
	Execute(ctx context.Context, args map[string]interface{}) Result
}

// BaseTool provides the identity half of the Tool contract.
type BaseTool struct {
	name        string
	description string
	params      []Parameter
}

// NewBaseTool creates a new base tool.
func NewBaseTool(name, description string, params []Parameter) BaseTool {
	return BaseTool{
		name:        name,
		description: description,
		params:      params,
	}
}

func (t BaseTool) Name() string {
	return t.name
}

func (t BaseTool) Description() string {
	return t.description
}

func (t BaseTool) Parameters() []Parameter {
	return t.params
}

// StringArg extracts a required string argument.
func StringArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s argument required", key)
	}
	return v, nil
}

// ObjectArg extracts a required object argument.
func ObjectArg(args map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := args[key].(map[string]interface{})
	if !ok || len(v) == 0 {
		return nil, fmt.Errorf("%s argument required", key)
	}
	return v, nil
}
