// Package mcp exposes the analyzers as MCP tools over stdio, so agent
// hosts can run terms-of-service analysis without the HTTP server.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexilens/lexilens/internal/classifier"
	"github.com/lexilens/lexilens/internal/gemini"
	"github.com/lexilens/lexilens/internal/rules"
)

// Config holds MCP server configuration.
type Config struct {
	RulesPath string
	Gemini    *gemini.Config // nil disables the lexilens_analyze gemini engine
}

// Server wraps the MCP SDK server around the classification engine.
type Server struct {
	mcpServer *mcpsdk.Server
	engine    *classifier.Engine
	remote    *gemini.Client
}

// New creates an MCP server with the ruleset loaded and tools registered.
func New(cfg Config) (*Server, error) {
	rs, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load ruleset: %w", err)
	}

	s := &Server{engine: classifier.New(rs)}
	if cfg.Gemini != nil {
		s.remote = gemini.New(*cfg.Gemini)
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "lexilens",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// registerTools adds all lexilens tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "lexilens_analyze",
		Description: "Analyze terms-of-service text for user risks. Returns 5 risk points and an overall verdict.",
	}, s.handleAnalyze)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "lexilens_extract",
		Description: "Extract readable legal text from webpage HTML and report whether the page looks like a legal document.",
	}, s.handleExtract)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "lexilens_rules",
		Description: "List the active risk rule table (id, severity, type, title).",
	}, s.handleRules)
}
