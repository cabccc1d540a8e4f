package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neves/zen-bridge/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Don't leak secrets to the terminal
			if cfg.OpenAI.APIKey != "" {
				cfg.OpenAI.APIKey = "***"
			}
			if cfg.Slack.BotToken != "" {
				cfg.Slack.BotToken = "***"
			}
			if cfg.Slack.AppToken != "" {
				cfg.Slack.AppToken = "***"
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Printf("Config file: %s\n\n%s", config.DefaultConfigPath(), data)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if err := config.NewDefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Printf("✅ Wrote default config to %s\n", path)
			return nil
		},
	})

	return cmd
}
