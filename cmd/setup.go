package cmd

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/neves/zen-bridge/internal/config"
	"github.com/neves/zen-bridge/internal/logging"
	"github.com/neves/zen-bridge/internal/orchestrator"
	"github.com/neves/zen-bridge/internal/providers"
	"github.com/neves/zen-bridge/internal/tools"
)

// availableTools builds the constructors for every tool the current config
// can back. Keys are the names the AI calls them by.
func availableTools(cfg *config.Config) map[string]func() tools.Tool {
	available := make(map[string]func() tools.Tool)

	if cfg.Warehouse.DSN != "" {
		available["warehouse_query"] = func() tools.Tool { return tools.NewWarehouseQueryTool(cfg.Warehouse.DSN) }
		available["warehouse_insert"] = func() tools.Tool { return tools.NewWarehouseInsertTool(cfg.Warehouse.DSN) }
	}
	if cfg.Postgres.DSN != "" {
		available["postgres_query"] = func() tools.Tool { return tools.NewPostgresQueryTool(cfg.Postgres.DSN) }
		available["postgres_insert"] = func() tools.Tool { return tools.NewPostgresInsertTool(cfg.Postgres.DSN) }
	}
	if cfg.Web.Enabled {
		available["web_fetch"] = func() tools.Tool { return tools.NewWebFetchTool() }
	}

	return available
}

func availableToolNames(available map[string]func() tools.Tool) []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildOrchestrator loads config and assembles an orchestrator with every
// configured tool registered.
func buildOrchestrator() (*orchestrator.Orchestrator, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	provider, err := providers.NewOpenAIProvider(providers.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("configure provider: %w", err)
	}

	orch := orchestrator.New(orchestrator.Config{
		Provider: provider,
		Model:    cfg.OpenAI.Model,
		Logger:   logger,
	})

	for name, build := range availableTools(cfg) {
		if err := orch.RegisterTool(build()); err != nil {
			return nil, nil, nil, fmt.Errorf("register tool %s: %w", name, err)
		}
	}

	return orch, cfg, logger, nil
}
