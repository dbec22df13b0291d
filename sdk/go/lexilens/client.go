package lexilens

import (
	"context"
	"fmt"

	"github.com/lexilens/lexilens/internal/classifier"
	"github.com/lexilens/lexilens/internal/gemini"
	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// Result is the analysis outcome: exactly 5 points plus a verdict.
type Result = model.Result

// Point is one display-ready risk item.
type Point = model.Point

// Verdict is the overall document label.
type Verdict = model.Verdict

// Severity is a point's risk tier.
type Severity = model.Severity

// Severity tiers, highest first.
const (
	SevCritical = model.SevCritical
	SevCaution  = model.SevCaution
	SevSafe     = model.SevSafe
	SevInfo     = model.SevInfo
)

// Client analyzes document text. Safe for concurrent use.
type Client struct {
	cfg    clientConfig
	engine *classifier.Engine
	remote *gemini.Client
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	var cfg clientConfig
	for _, o := range opts {
		o(&cfg)
	}

	rs, err := rules.Load(cfg.rulesPath)
	if err != nil {
		return nil, fmt.Errorf("lexilens: failed to load ruleset: %w", err)
	}

	c := &Client{
		cfg:    cfg,
		engine: classifier.New(rs),
	}
	if cfg.geminiConfig != nil {
		c.remote = gemini.New(*cfg.geminiConfig)
	}
	return c, nil
}

// Analyze classifies text. With the remote engine enabled it is tried
// first and the rule table serves as fallback; otherwise the rule table is
// used directly. Never fails when the rule table is the active strategy.
func (c *Client) Analyze(ctx context.Context, text string) (Result, error) {
	if c.remote != nil && c.cfg.preferRemote {
		result, err := c.remote.Analyze(ctx, text)
		if err == nil {
			return result, nil
		}
	}
	return c.engine.Analyze(text), nil
}

// AnalyzeRules classifies text with the rule table only, bypassing any
// configured remote engine. Pure and deterministic.
func (c *Client) AnalyzeRules(text string) Result {
	return c.engine.Analyze(text)
}
