// Package classifier turns extracted document text into a bounded set of
// user-relevant risk points and an overall verdict. Pure computation: no
// I/O, no shared mutable state, no error paths — any string in, a
// well-formed result out.
package classifier

import (
	"sort"

	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// Engine classifies text against a compiled ruleset. The ruleset is
// read-only after construction, so an Engine is safe for concurrent use.
type Engine struct {
	rs *rules.Ruleset
}

// New creates an Engine over the given ruleset.
func New(rs *rules.Ruleset) *Engine {
	return &Engine{rs: rs}
}

// NewDefault creates an Engine over the built-in rule table.
func NewDefault() *Engine {
	return New(rules.NewDefault())
}

// Ruleset returns the engine's ruleset.
func (e *Engine) Ruleset() *rules.Ruleset { return e.rs }

// Analyze classifies text and returns exactly model.PointCount points plus
// a verdict. Never fails, including for empty input.
//
// Pipeline order (must not be changed):
//  1. Match — every rule against the full text, at most one finding per id
//  2. Conflict resolution — declared override pairs remove findings
//  3. Severity sort — stable, CRITICAL > CAUTION > SAFE > INFO
//  4. Selection — one point per unused type, then unused ids, up to 5
//  5. Filler padding — deterministic index formula until 5 points
//  6. Verdict — from the full conflict-resolved set, not the 5 selected
func (e *Engine) Analyze(text string) model.Result {
	findings := e.match(text)
	findings = e.resolveConflicts(findings)

	// Stable: equal severities keep rule-table order.
	sort.SliceStable(findings, func(i, j int) bool {
		return model.SeverityRank[findings[i].Severity] > model.SeverityRank[findings[j].Severity]
	})

	return model.Result{
		Points:  e.selectPoints(findings),
		Verdict: deriveVerdict(findings),
	}
}

// match scans the text against every rule in table order. Each rule
// contributes at most one finding per call, keyed by id.
func (e *Engine) match(text string) []rules.Rule {
	var findings []rules.Rule
	seen := make(map[string]bool)

	for _, rule := range e.rs.Rules() {
		if seen[rule.ID] {
			continue
		}
		if rule.Pattern.Match(text) {
			findings = append(findings, rule)
			seen[rule.ID] = true
		}
	}
	return findings
}

// resolveConflicts applies the ruleset's override pairs: when the
// suppressor rule matched, findings for its paired rule are dropped.
func (e *Engine) resolveConflicts(findings []rules.Rule) []rules.Rule {
	matched := make(map[string]bool, len(findings))
	for _, f := range findings {
		matched[f.ID] = true
	}

	removed := make(map[string]bool)
	for _, ov := range e.rs.Overrides() {
		if matched[ov.When] {
			removed[ov.Remove] = true
		}
	}
	if len(removed) == 0 {
		return findings
	}

	kept := findings[:0]
	for _, f := range findings {
		if !removed[f.ID] {
			kept = append(kept, f)
		}
	}
	return kept
}
