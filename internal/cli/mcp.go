package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	lexmcp "github.com/lexilens/lexilens/internal/mcp"
)

var mcpRules string

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpRules, "rules", "", "Path to ruleset YAML (default: built-in table)")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long: "Runs lexilens as an MCP (Model Context Protocol) server over stdio.\n" +
		"Exposes tools: lexilens_analyze, lexilens_extract, lexilens_rules.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := lexmcp.Config{RulesPath: mcpRules}
	if geminiConfigured() {
		gc := geminiConfigFromFlags()
		cfg.Gemini = &gc
	}

	srv, err := lexmcp.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "lexilens MCP server on stdio")
	return srv.Run(ctx)
}
