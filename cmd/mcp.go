package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neves/zen-bridge/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the registered tools over MCP (stdio)",
		Long: `Expose every configured tool over the Model Context Protocol on
stdin/stdout, so MCP clients can list and call them:

  zen-bridge mcp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, _, logger, err := buildOrchestrator()
			if err != nil {
				return err
			}

			srv := mcpserver.New(orch, version, logger)
			return srv.ServeStdio()
		},
	}
}
