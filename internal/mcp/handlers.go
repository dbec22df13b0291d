package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexilens/lexilens/internal/extract"
	"github.com/lexilens/lexilens/internal/model"
)

// --- Input/Output types ---

// AnalyzeInput defines parameters for the lexilens_analyze tool.
type AnalyzeInput struct {
	Text   string `json:"text" jsonschema:"document text to analyze"`
	Engine string `json:"engine,omitempty" jsonschema:"analysis engine (rules|gemini), default rules"`
}

// AnalyzeOutput carries the analysis result and which engine produced it.
type AnalyzeOutput struct {
	Result model.Result `json:"result"`
	Engine string       `json:"engine"`
}

// ExtractInput defines parameters for the lexilens_extract tool.
type ExtractInput struct {
	HTML  string `json:"html" jsonschema:"webpage HTML"`
	URL   string `json:"url,omitempty" jsonschema:"page URL, used for legal-page detection"`
	Title string `json:"title,omitempty" jsonschema:"page title, used for legal-page detection"`
}

// ExtractOutput contains the extracted text and the detection flag.
type ExtractOutput struct {
	Text      string `json:"text"`
	LegalPage bool   `json:"legal_page"`
}

// RulesInput is empty — no parameters needed.
type RulesInput struct{}

// RulesOutput lists the active rule table.
type RulesOutput struct {
	Rules []RuleItem `json:"rules"`
}

// RuleItem describes a single rule.
type RuleItem struct {
	ID       string         `json:"id"`
	Severity model.Severity `json:"severity"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
}

// --- Handlers ---

func (s *Server) handleAnalyze(ctx context.Context, req *mcpsdk.CallToolRequest, input AnalyzeInput) (*mcpsdk.CallToolResult, AnalyzeOutput, error) {
	switch input.Engine {
	case "", "rules":
		return nil, AnalyzeOutput{Result: s.engine.Analyze(input.Text), Engine: "rules"}, nil

	case "gemini":
		if s.remote == nil {
			return &mcpsdk.CallToolResult{IsError: true}, AnalyzeOutput{}, fmt.Errorf("gemini engine is not configured")
		}
		result, err := s.remote.Analyze(ctx, input.Text)
		if err != nil {
			return &mcpsdk.CallToolResult{IsError: true}, AnalyzeOutput{}, err
		}
		return nil, AnalyzeOutput{Result: result, Engine: "gemini"}, nil

	default:
		return &mcpsdk.CallToolResult{IsError: true}, AnalyzeOutput{}, fmt.Errorf("unknown engine %q", input.Engine)
	}
}

func (s *Server) handleExtract(ctx context.Context, req *mcpsdk.CallToolRequest, input ExtractInput) (*mcpsdk.CallToolResult, ExtractOutput, error) {
	text, err := extract.ReadableText(strings.NewReader(input.HTML))
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, ExtractOutput{}, fmt.Errorf("extract html: %w", err)
	}
	return nil, ExtractOutput{
		Text:      text,
		LegalPage: extract.IsLegalPage(input.URL, input.Title, ""),
	}, nil
}

func (s *Server) handleRules(ctx context.Context, req *mcpsdk.CallToolRequest, input RulesInput) (*mcpsdk.CallToolResult, RulesOutput, error) {
	ruleList := s.engine.Ruleset().Rules()
	out := RulesOutput{Rules: make([]RuleItem, len(ruleList))}
	for i, r := range ruleList {
		out.Rules[i] = RuleItem{ID: r.ID, Severity: r.Severity, Type: r.Type, Title: r.Title}
	}
	return nil, out, nil
}
