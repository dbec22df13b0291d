// Package gemini is the remote alternative to the rule-based classifier:
// the same Result contract produced by a generative-language API instead of
// the static rule table. Callers choose one strategy per analysis; this
// package never runs concurrently with the rule engine on the same call.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lexilens/lexilens/internal/model"
)

// DefaultAPIURL is the Google generative-language endpoint base.
const DefaultAPIURL = "https://generativelanguage.googleapis.com"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-flash-latest"

// The remote path gates input length; the rule-based core does not.
const (
	minTextLen = 50
	maxTextLen = 30000
)

// ErrTextTooShort is returned for inputs under the minimum length. Callers
// branch on it to skip the fallback path's error reporting.
var ErrTextTooShort = errors.New("text too short for remote analysis")

// Config holds remote analyzer parameters.
type Config struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the generative-language API and normalizes responses to the
// Result contract.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client. An empty API key is allowed at construction and
// fails at Analyze time with the server's auth error.
func New(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// generateContent request/response shapes, trimmed to the fields used.

type generateRequest struct {
	Contents       []content       `json:"contents"`
	SafetySettings []safetySetting `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// blockOnlyHigh keeps the safety filter from rejecting ordinary legal text.
var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
}

// Analyze sends the text for remote classification and returns a
// normalized Result. Unlike the rule engine this can fail: short input,
// transport errors, API errors, safety blocks, or malformed responses.
func (c *Client) Analyze(ctx context.Context, text string) (model.Result, error) {
	if len(text) < minTextLen {
		return model.Result{}, ErrTextTooShort
	}
	if len(text) > maxTextLen {
		text = text[:maxTextLen]
	}

	reqBody, err := json.Marshal(generateRequest{
		Contents:       []content{{Parts: []part{{Text: buildPrompt(text)}}}},
		SafetySettings: defaultSafetySettings,
	})
	if err != nil {
		return model.Result{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.cfg.APIURL, "/"), c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return model.Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Result{}, fmt.Errorf("remote analysis request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Result{}, fmt.Errorf("read response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return model.Result{}, fmt.Errorf("parse response (HTTP %d): %w", resp.StatusCode, err)
	}
	if gr.Error != nil {
		return model.Result{}, fmt.Errorf("API error: %s", gr.Error.Message)
	}
	if len(gr.Candidates) == 0 {
		if gr.PromptFeedback != nil && gr.PromptFeedback.BlockReason != "" {
			return model.Result{}, fmt.Errorf("request blocked: %s", gr.PromptFeedback.BlockReason)
		}
		return model.Result{}, fmt.Errorf("no candidates in response (HTTP %d)", resp.StatusCode)
	}
	if len(gr.Candidates[0].Content.Parts) == 0 {
		return model.Result{}, fmt.Errorf("empty candidate content")
	}

	raw := gr.Candidates[0].Content.Parts[0].Text
	return parseResult(raw)
}
