package cmd

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "zen-bridge",
	Short: "Zen Bridge - AI-driven database operations",
	Long: `Zen Bridge lets an AI agent run query and insert operations against
your databases through a dynamic tool registry, over chat, WebSocket,
Slack or MCP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.zen/zen-bridge/config.yaml)")

	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newGatewayCmd())
	rootCmd.AddCommand(newSlackCmd())
	rootCmd.AddCommand(newConfigCmd())
}
