package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neves/zen-bridge/internal/gateway"
)

func newGatewayCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the chat gateway over WebSocket",
		Long: `Start an HTTP server with a WebSocket chat endpoint (/ws), a tool
listing (/tools) and a health check (/healthz).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cfg, logger, err := buildOrchestrator()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Gateway.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return gateway.New(orch, addr, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
