package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/neves/zen-bridge/internal/orchestrator"
	"github.com/neves/zen-bridge/internal/tools"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the AI about your data",
		Long: `Start an interactive chat session. The AI can call the registered
database tools to answer, e.g.:

  "Query the sales table in the warehouse to get all records from last month"
  "Add a new product to the products table in Postgres with price 29.99"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, cfg, _, err := buildOrchestrator()
			if err != nil {
				return err
			}
			return runChat(orch, availableTools(cfg))
		},
	}
}

func runChat(orch *orchestrator.Orchestrator, available map[string]func() tools.Tool) error {
	fmt.Println("🤖 Zen Bridge")
	fmt.Println("═" + strings.Repeat("═", 78))
	fmt.Printf("Active tools: %s\n", strings.Join(orch.ToolNames(), ", "))
	fmt.Println("Commands: /tools, /tool add <name>, /tool remove <name>, /clear, /help, /exit")
	fmt.Println("═" + strings.Repeat("═", 78))

	historyFile := filepath.Join(os.Getenv("HOME"), ".zen-bridge-history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		HistoryLimit:      1000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("setup readline: %w", err)
	}
	defer rl.Close()

	ctx := context.Background()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println("\nInterrupted. Use /exit to quit.")
				continue
			}
			fmt.Println("\nExiting...")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch {
		case input == "/exit" || input == "/quit":
			fmt.Println("Goodbye!")
			return nil

		case input == "/help":
			printChatHelp()
			continue

		case input == "/tools":
			printActiveTools(orch, available)
			continue

		case strings.HasPrefix(input, "/tool add "):
			name := strings.TrimSpace(strings.TrimPrefix(input, "/tool add "))
			build, ok := available[name]
			if !ok {
				fmt.Printf("❌ Unknown tool: %s (see /tools for what is available)\n", name)
				continue
			}
			if err := orch.RegisterTool(build()); err != nil {
				fmt.Printf("❌ %v\n", err)
				continue
			}
			fmt.Printf("✅ Added %s\n", name)
			continue

		case strings.HasPrefix(input, "/tool remove "):
			name := strings.TrimSpace(strings.TrimPrefix(input, "/tool remove "))
			orch.UnregisterTool(name)
			fmt.Printf("✅ Removed %s\n", name)
			continue

		case input == "/clear":
			orch.ClearHistory()
			fmt.Println("✓ Conversation cleared.")
			continue
		}

		response := orch.ProcessRequest(ctx, input)
		fmt.Println(response)
	}
}

func printActiveTools(orch *orchestrator.Orchestrator, available map[string]func() tools.Tool) {
	active := orch.ToolNames()
	fmt.Printf("Active tools (%d):\n", len(active))
	for _, name := range active {
		fmt.Printf("  • %s\n", name)
	}
	fmt.Println("Available tools:")
	for _, name := range availableToolNames(available) {
		fmt.Printf("  • %s\n", name)
	}
}

func printChatHelp() {
	fmt.Println("Commands:")
	fmt.Println("  /tools              List active and available tools")
	fmt.Println("  /tool add <name>    Register a tool")
	fmt.Println("  /tool remove <name> Unregister a tool")
	fmt.Println("  /clear              Clear conversation history")
	fmt.Println("  /exit               Quit")
	fmt.Println()
	fmt.Println("Anything else is sent to the AI.")
}
