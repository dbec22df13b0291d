package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexilens/lexilens/internal/model"
)

// RuleDef is the raw, serializable form of one rule.
type RuleDef struct {
	ID            string         `yaml:"id"`
	Severity      model.Severity `yaml:"severity"`
	Type          string         `yaml:"type"`
	Title         string         `yaml:"title"`
	Explanation   string         `yaml:"explanation"`
	ExplanationHI string         `yaml:"explanation_hi,omitempty"`
	Pattern       []GroupDef     `yaml:"pattern"`
}

// OverrideDef declares one conflict pair: when the rule named by When has
// matched, any finding for the rule named by Remove is dropped. Overrides
// are explicit and enumerable — there is no implicit severity-based
// suppression.
type OverrideDef struct {
	When   string `yaml:"when"`
	Remove string `yaml:"remove"`
}

// FillerDef is one generic point used to pad analysis output.
type FillerDef struct {
	Title       string `yaml:"title"`
	Explanation string `yaml:"explanation"`
}

// RulesetDef is the raw on-disk form of a complete rule table.
type RulesetDef struct {
	Rules     []RuleDef     `yaml:"rules"`
	Overrides []OverrideDef `yaml:"overrides"`
	Fillers   []FillerDef   `yaml:"fillers"`
}

// Rule is a compiled rule, immutable after New.
type Rule struct {
	ID            string
	Severity      model.Severity
	Type          string
	Title         string
	Explanation   string
	ExplanationHI string
	Pattern       *Pattern
}

// Ruleset holds the compiled rule table, override pairs, and filler points.
// Read-only after New; safe for concurrent use.
type Ruleset struct {
	rules     []Rule
	overrides []OverrideDef
	fillers   []FillerDef
	raw       RulesetDef
}

// New compiles and validates a ruleset definition.
func New(def RulesetDef) (*Ruleset, error) {
	if len(def.Rules) == 0 {
		return nil, fmt.Errorf("ruleset has no rules")
	}
	if len(def.Fillers) == 0 {
		return nil, fmt.Errorf("ruleset has no fillers")
	}

	rs := &Ruleset{
		overrides: def.Overrides,
		fillers:   def.Fillers,
		raw:       def,
	}

	ids := make(map[string]bool, len(def.Rules))
	for i, rd := range def.Rules {
		if rd.ID == "" {
			return nil, fmt.Errorf("rule %d: id is required", i)
		}
		if ids[rd.ID] {
			return nil, fmt.Errorf("rule %q: duplicate id", rd.ID)
		}
		ids[rd.ID] = true

		switch rd.Severity {
		case model.SevCritical, model.SevCaution, model.SevSafe:
		default:
			return nil, fmt.Errorf("rule %q: invalid severity %q", rd.ID, rd.Severity)
		}
		if rd.Type == "" || rd.Title == "" {
			return nil, fmt.Errorf("rule %q: type and title are required", rd.ID)
		}

		p, err := CompilePattern(rd.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rd.ID, err)
		}
		rs.rules = append(rs.rules, Rule{
			ID:            rd.ID,
			Severity:      rd.Severity,
			Type:          rd.Type,
			Title:         rd.Title,
			Explanation:   rd.Explanation,
			ExplanationHI: rd.ExplanationHI,
			Pattern:       p,
		})
	}

	for _, ov := range def.Overrides {
		if !ids[ov.When] {
			return nil, fmt.Errorf("override: unknown rule id %q in when", ov.When)
		}
		if !ids[ov.Remove] {
			return nil, fmt.Errorf("override: unknown rule id %q in remove", ov.Remove)
		}
	}

	return rs, nil
}

// NewDefault compiles the built-in LexiLens rule table.
func NewDefault() *Ruleset {
	rs, err := New(DefaultRuleset)
	if err != nil {
		panic(fmt.Sprintf("built-in ruleset invalid: %v", err))
	}
	return rs
}

// Load reads a ruleset from a YAML file. An empty path or a missing file
// falls back to the built-in defaults.
func Load(path string) (*Ruleset, error) {
	if path == "" {
		return NewDefault(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("read ruleset: %w", err)
	}

	var def RulesetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}

	rs, err := New(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Rules returns the compiled rules in table order.
func (rs *Ruleset) Rules() []Rule { return rs.rules }

// Overrides returns the declared conflict pairs.
func (rs *Ruleset) Overrides() []OverrideDef { return rs.overrides }

// Fillers returns the filler points used to pad output.
func (rs *Ruleset) Fillers() []FillerDef { return rs.fillers }

// Def returns the raw definition the ruleset was compiled from.
func (rs *Ruleset) Def() RulesetDef { return rs.raw }
