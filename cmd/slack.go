package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neves/zen-bridge/internal/slackbot"
)

func newSlackCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "slack",
		Short: "Run as a Slack bot (Socket Mode)",
		Long: `Connect to Slack over Socket Mode and answer app mentions and DMs
through the orchestrator. Requires bot and app tokens in the config or the
SLACK_BOT_TOKEN / SLACK_APP_TOKEN environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cfg, logger, err := buildOrchestrator()
			if err != nil {
				return err
			}

			bot, err := slackbot.NewBot(slackbot.Config{
				BotToken: cfg.Slack.BotToken,
				AppToken: cfg.Slack.AppToken,
				Debug:    debug,
			}, orch, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return bot.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable Slack client debug logging")
	return cmd
}
