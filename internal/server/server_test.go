package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexilens/lexilens/internal/gemini"
	"github.com/lexilens/lexilens/internal/model"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeText(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze",
		`{"text":"We may sell your data to third party advertisers."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Engine != "rules" {
		t.Errorf("engine = %q, want rules", resp.Engine)
	}
	if len(resp.Result.Points) != model.PointCount {
		t.Fatalf("got %d points, want %d", len(resp.Result.Points), model.PointCount)
	}
	if resp.Result.Points[0].Title != "Personal Data Selling" {
		t.Errorf("Points[0].Title = %q", resp.Result.Points[0].Title)
	}
	if resp.Result.Verdict.Color != model.ColorRed {
		t.Errorf("Verdict.Color = %q, want red", resp.Result.Verdict.Color)
	}
}

func TestAnalyzeHTML(t *testing.T) {
	s := newTestServer(t, Config{})

	body := `{"html":"<html><body><p>We may sell your personal data to third party advertisers at will.</p></body></html>",
	  "url":"https://example.com/terms-of-service","title":"Terms"}`
	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result.Points[0].Title != "Personal Data Selling" {
		t.Errorf("Points[0].Title = %q", resp.Result.Points[0].Title)
	}
	if resp.LegalPage == nil || !*resp.LegalPage {
		t.Error("expected legal_page to be true")
	}
}

func TestAnalyzeRequiresInput(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeRejectsBadJSON(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeUnknownEngine(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze",
		`{"text":"hello","engine":"oracle"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeGeminiNotConfigured(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze",
		`{"text":"hello","engine":"gemini"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeGeminiFallsBackToRules(t *testing.T) {
	// A remote endpoint that always errors forces the fallback path.
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer remote.Close()

	s := newTestServer(t, Config{Gemini: &gemini.Config{APIURL: remote.URL, APIKey: "k"}})

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/analyze",
		`{"text":"We may sell your data to third party advertisers whenever we like.","engine":"gemini"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Engine != "rules" {
		t.Errorf("engine = %q, want rules fallback", resp.Engine)
	}
	if resp.Fallback == "" {
		t.Error("expected fallback reason to be set")
	}
	if len(resp.Result.Points) != model.PointCount {
		t.Errorf("got %d points, want %d", len(resp.Result.Points), model.PointCount)
	}
}

func TestRulesEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodGet, "/v1/rules", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Rules []ruleSummary `json:"rules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Rules) != 10 {
		t.Fatalf("got %d rules, want 10", len(resp.Rules))
	}
	if resp.Rules[0].ID != "data_selling" {
		t.Errorf("Rules[0].ID = %q", resp.Rules[0].ID)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := doJSON(t, s.Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

const reloadRuleset = `
rules:
  - id: fine_print
    severity: CAUTION
    type: Legal Risk
    title: Dense Fine Print
    explanation: The document buries key terms in fine print.
    pattern:
      - terms: [fine print]
fillers:
  - title: Standard Guidelines
    explanation: Generic usage guidelines apply.
  - title: Copyright Terms
    explanation: Content is protected by standard copyright.
  - title: Governing Law
    explanation: The agreement names a governing jurisdiction.
`

func TestReloadRulesSwapsRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(reloadRuleset), 0o644); err != nil {
		t.Fatal(err)
	}

	// Starts with the written single-rule table, not the defaults.
	s := newTestServer(t, Config{RulesPath: path})
	if got := len(s.engine.Ruleset().Rules()); got != 1 {
		t.Fatalf("got %d rules before reload, want 1", got)
	}

	updated := strings.Replace(reloadRuleset, "Dense Fine Print", "Updated Fine Print", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.ReloadRules(); err != nil {
		t.Fatalf("ReloadRules: %v", err)
	}
	if got := s.engine.Ruleset().Rules()[0].Title; got != "Updated Fine Print" {
		t.Errorf("title after reload = %q", got)
	}
}

func TestReloadRulesKeepsEngineOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(reloadRuleset), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, Config{RulesPath: path})

	if err := os.WriteFile(path, []byte("rules: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.ReloadRules(); err == nil {
		t.Fatal("expected reload error for broken file")
	}
	// The previous engine stays in service.
	if got := len(s.engine.Ruleset().Rules()); got != 1 {
		t.Errorf("got %d rules after failed reload, want 1", got)
	}
}
