package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/lexilens/lexilens/internal/model"
)

func newTestMCP(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestAnalyzeToolRules(t *testing.T) {
	s := newTestMCP(t, Config{})

	_, out, err := s.handleAnalyze(context.Background(), nil, AnalyzeInput{
		Text: "We may sell your data to third party advertisers.",
	})
	if err != nil {
		t.Fatalf("handleAnalyze: %v", err)
	}
	if out.Engine != "rules" {
		t.Errorf("engine = %q, want rules", out.Engine)
	}
	if len(out.Result.Points) != model.PointCount {
		t.Fatalf("got %d points, want %d", len(out.Result.Points), model.PointCount)
	}
	if out.Result.Points[0].Title != "Personal Data Selling" {
		t.Errorf("Points[0].Title = %q", out.Result.Points[0].Title)
	}
}

func TestAnalyzeToolGeminiUnconfigured(t *testing.T) {
	s := newTestMCP(t, Config{})

	res, _, err := s.handleAnalyze(context.Background(), nil, AnalyzeInput{
		Text:   "some document text",
		Engine: "gemini",
	})
	if err == nil {
		t.Fatal("expected error for unconfigured gemini engine")
	}
	if res == nil || !res.IsError {
		t.Error("expected IsError result")
	}
}

func TestAnalyzeToolUnknownEngine(t *testing.T) {
	s := newTestMCP(t, Config{})

	_, _, err := s.handleAnalyze(context.Background(), nil, AnalyzeInput{
		Text:   "some document text",
		Engine: "oracle",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown engine") {
		t.Fatalf("err = %v, want unknown engine error", err)
	}
}

func TestExtractTool(t *testing.T) {
	s := newTestMCP(t, Config{})

	_, out, err := s.handleExtract(context.Background(), nil, ExtractInput{
		HTML:  "<html><body><p>By using this service you agree to these terms.</p></body></html>",
		URL:   "https://example.com/terms",
		Title: "Terms of Service",
	})
	if err != nil {
		t.Fatalf("handleExtract: %v", err)
	}
	if !strings.Contains(out.Text, "you agree to these terms") {
		t.Errorf("extracted text = %q", out.Text)
	}
	if !out.LegalPage {
		t.Error("expected legal_page to be true")
	}
}

func TestRulesTool(t *testing.T) {
	s := newTestMCP(t, Config{})

	_, out, err := s.handleRules(context.Background(), nil, RulesInput{})
	if err != nil {
		t.Fatalf("handleRules: %v", err)
	}
	if len(out.Rules) != 10 {
		t.Fatalf("got %d rules, want 10", len(out.Rules))
	}
	for _, r := range out.Rules {
		if !r.Severity.Known() {
			t.Errorf("rule %s has unknown severity %q", r.ID, r.Severity)
		}
	}
}
