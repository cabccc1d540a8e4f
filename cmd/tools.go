package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neves/zen-bridge/internal/config"
	"github.com/neves/zen-bridge/internal/tools"
)

func newToolsCmd() *cobra.Command {
	var showSchemas bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List configured tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			available := availableTools(cfg)
			if len(available) == 0 {
				fmt.Println("No tools configured. Set warehouse/postgres DSNs in the config.")
				return nil
			}

			fmt.Printf("Configured tools (%d):\n", len(available))
			for _, name := range availableToolNames(available) {
				schema := tools.ProjectSchema(available[name]())
				fmt.Printf("  • %s - %s\n", schema.Name, schema.Description)
				if showSchemas {
					data, err := json.MarshalIndent(schema.InputSchema, "    ", "  ")
					if err != nil {
						return fmt.Errorf("marshal schema: %w", err)
					}
					fmt.Printf("    %s\n", data)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSchemas, "schemas", false, "print each tool's input schema")
	return cmd
}
