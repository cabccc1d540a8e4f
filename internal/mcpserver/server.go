// Package mcpserver exposes the orchestrator's registered tools over the
// Model Context Protocol, so third-party MCP clients can list and call them.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/neves/zen-bridge/internal/orchestrator"
	"github.com/neves/zen-bridge/internal/tools"
)

const serverName = "zen-bridge"

// Server advertises the orchestrator's tool schemas and dispatches call_tool
// requests through the registry.
type Server struct {
	orch       *orchestrator.Orchestrator
	mcp        *server.MCPServer
	logger     *zap.Logger
	advertised []string
}

// New creates an MCP server advertising the orchestrator's current tools.
func New(orch *orchestrator.Orchestrator, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		orch: orch,
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
		),
		logger: logger,
	}
	s.Sync()
	return s
}

// Sync re-advertises the orchestrator's current tool set. Call after
// registry mutations so MCP clients never see a stale listing.
func (s *Server) Sync() {
	if len(s.advertised) > 0 {
		s.mcp.DeleteTools(s.advertised...)
		s.advertised = nil
	}

	for _, schema := range s.orch.Schemas() {
		schema := schema
		s.mcp.AddTool(toMCPTool(schema), s.handleCall(schema.Name))
		s.advertised = append(s.advertised, schema.Name)
	}
	s.logger.Info("mcp tools advertised", zap.Int("count", len(s.advertised)))
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleCall(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := s.orch.CallTool(ctx, name, req.GetArguments())
		if !result.Success {
			return mcp.NewToolResultError(result.Error), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%v", result.Data)), nil
	}
}

// toMCPTool converts a registry schema into the wire tool shape. The input
// schema carries over field by field; this is the only place the two
// representations meet.
func toMCPTool(schema tools.Schema) mcp.Tool {
	props := make(map[string]interface{}, len(schema.InputSchema.Properties))
	for name, p := range schema.InputSchema.Properties {
		props[name] = map[string]interface{}{
			"type":        p.Type,
			"description": p.Description,
		}
	}

	return mcp.Tool{
		Name:        schema.Name,
		Description: schema.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       schema.InputSchema.Type,
			Properties: props,
			Required:   schema.InputSchema.Required,
		},
	}
}
