// Package server exposes the analyzers over a small JSON HTTP API, with
// hot-reload of the rules file.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lexilens/lexilens/internal/classifier"
	"github.com/lexilens/lexilens/internal/extract"
	"github.com/lexilens/lexilens/internal/gemini"
	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// Config holds HTTP server configuration.
type Config struct {
	Port      int
	RulesPath string
	Gemini    *gemini.Config // nil disables the remote engine
}

// Server serves analyze requests. The engine is swapped atomically on
// rules reload; requests in flight keep the ruleset they started with.
type Server struct {
	cfg    Config
	mu     sync.RWMutex
	engine *classifier.Engine
	remote *gemini.Client
	srv    *http.Server
}

// New creates a server with the ruleset loaded (or built-in defaults when
// the path is empty or missing).
func New(cfg Config) (*Server, error) {
	rs, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load ruleset: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		engine: classifier.New(rs),
	}
	if cfg.Gemini != nil {
		s.remote = gemini.New(*cfg.Gemini)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /v1/rules", s.handleRules)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Serve listens on the configured port. Blocks until Shutdown.
func (s *Server) Serve() error {
	return s.srv.ListenAndServe()
}

// ServeOn serves on the given listener. For testing.
func (s *Server) ServeOn(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the HTTP handler. For testing.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ReloadRules atomically swaps in a freshly loaded ruleset.
// Called by the hot-reloader on file change.
func (s *Server) ReloadRules() error {
	rs, err := rules.Load(s.cfg.RulesPath)
	if err != nil {
		return fmt.Errorf("reload ruleset: %w", err)
	}
	s.mu.Lock()
	s.engine = classifier.New(rs)
	s.mu.Unlock()
	return nil
}

// analyzeRequest is the /v1/analyze request body. Either text or html is
// required; url and title feed legal-page detection only.
type analyzeRequest struct {
	Text   string `json:"text"`
	HTML   string `json:"html"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Engine string `json:"engine"`
}

// analyzeResponse wraps the Result with which engine actually produced it.
type analyzeResponse struct {
	Result    model.Result `json:"result"`
	Engine    string       `json:"engine"`
	LegalPage *bool        `json:"legal_page,omitempty"`
	Fallback  string       `json:"fallback,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	text := req.Text
	if text == "" && req.HTML != "" {
		extracted, err := extract.ReadableText(strings.NewReader(req.HTML))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("extract html: %v", err))
			return
		}
		text = extracted
	}
	if req.Text == "" && req.HTML == "" {
		writeError(w, http.StatusBadRequest, "text or html is required")
		return
	}

	resp := analyzeResponse{}
	if req.URL != "" || req.Title != "" {
		legal := extract.IsLegalPage(req.URL, req.Title, "")
		resp.LegalPage = &legal
	}

	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()

	switch req.Engine {
	case "", "rules":
		resp.Result = engine.Analyze(text)
		resp.Engine = "rules"

	case "gemini":
		if s.remote == nil {
			writeError(w, http.StatusBadRequest, "gemini engine is not configured")
			return
		}
		result, err := s.remote.Analyze(r.Context(), text)
		if err != nil {
			// The rule engine cannot fail; use it rather than erroring.
			if !errors.Is(err, gemini.ErrTextTooShort) {
				fmt.Fprintf(os.Stderr, "gemini analysis failed, falling back to rules: %v\n", err)
			}
			resp.Result = engine.Analyze(text)
			resp.Engine = "rules"
			resp.Fallback = err.Error()
		} else {
			resp.Result = result
			resp.Engine = "gemini"
		}

	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown engine %q", req.Engine))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ruleSummary is one row of the /v1/rules listing.
type ruleSummary struct {
	ID       string         `json:"id"`
	Severity model.Severity `json:"severity"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()

	ruleList := engine.Ruleset().Rules()
	out := make([]ruleSummary, len(ruleList))
	for i, rule := range ruleList {
		out[i] = ruleSummary{ID: rule.ID, Severity: rule.Severity, Type: rule.Type, Title: rule.Title}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": out})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
