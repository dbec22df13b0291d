package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexilens/lexilens/internal/server"
)

var (
	servePort  int
	serveRules string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 8470, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveRules, "rules", "", "Path to ruleset YAML (default: built-in table)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	Long: "Runs the analyzer as a JSON HTTP API: POST /v1/analyze, GET /v1/rules,\n" +
		"GET /healthz. Supports hot-reload of the ruleset file.",
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		Port:      servePort,
		RulesPath: serveRules,
	}
	if geminiConfigured() {
		gc := geminiConfigFromFlags()
		cfg.Gemini = &gc
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Start hot-reload watcher for the rules file
	reloader, err := server.NewReloader(srv, []string{serveRules})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: hot-reload disabled: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reloader != nil {
		go reloader.Run(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down analysis server...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "lexilens analysis server listening on :%d\n", servePort)
	if serveRules != "" {
		fmt.Fprintf(os.Stderr, "Rules: %s (hot-reload enabled)\n", serveRules)
	}
	if cfg.Gemini != nil {
		fmt.Fprintf(os.Stderr, "Gemini engine: enabled\n")
	}
	fmt.Fprintln(os.Stderr)

	if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
