package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultWindow is the proximity window, in bytes, used when a group
// does not declare its own.
const defaultWindow = 100

// GroupDef is one concept group of a pattern: a list of phrase terms plus
// the maximum distance from the end of the previous group's match to the
// start of this group's match. Window is ignored on the first group.
type GroupDef struct {
	Terms  []string `yaml:"terms"`
	Window int      `yaml:"window"`
}

// Pattern tests for ordered co-occurrence of concept groups within bounded
// proximity windows. A pattern matches iff every group matches in declaration
// order, each within its window after the previous group's match. This is the
// explicit scan equivalent of a chained windowed regex, without the
// backtracking risk of `.{0,N}` gaps.
type Pattern struct {
	groups []group
}

type group struct {
	re     *regexp.Regexp
	window int
}

// CompilePattern builds a Pattern from group definitions. Each term compiles
// to a case-insensitive alternation; spaces inside a term match any
// whitespace run, so "no refund" also matches "no\n  refund".
func CompilePattern(defs []GroupDef) (*Pattern, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("pattern has no groups")
	}

	p := &Pattern{groups: make([]group, 0, len(defs))}
	for i, def := range defs {
		if len(def.Terms) == 0 {
			return nil, fmt.Errorf("group %d has no terms", i)
		}
		alts := make([]string, 0, len(def.Terms))
		for _, term := range def.Terms {
			if strings.TrimSpace(term) == "" {
				return nil, fmt.Errorf("group %d has an empty term", i)
			}
			alts = append(alts, termToRegex(term))
		}
		re, err := regexp.Compile("(?i)(?:" + strings.Join(alts, "|") + ")")
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}

		window := def.Window
		if window <= 0 {
			window = defaultWindow
		}
		p.groups = append(p.groups, group{re: re, window: window})
	}
	return p, nil
}

// MustCompilePattern is CompilePattern for static tables. Panics on error.
func MustCompilePattern(defs []GroupDef) *Pattern {
	p, err := CompilePattern(defs)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether text contains at least one full chain of the
// pattern's concept groups in order, within the declared windows.
func (p *Pattern) Match(text string) bool {
	for _, loc := range p.groups[0].re.FindAllStringIndex(text, -1) {
		if p.matchFrom(text, 1, loc[1]) {
			return true
		}
	}
	return false
}

// matchFrom checks groups[gi:] against text, requiring the next group to
// start at most its window bytes after position from.
func (p *Pattern) matchFrom(text string, gi, from int) bool {
	if gi == len(p.groups) {
		return true
	}
	g := p.groups[gi]
	limit := from + g.window
	for _, loc := range g.re.FindAllStringIndex(text[from:], -1) {
		start := from + loc[0]
		if start > limit {
			break
		}
		if p.matchFrom(text, gi+1, from+loc[1]) {
			return true
		}
	}
	return false
}

// termToRegex escapes a phrase term, turning interior spaces into `\s+`.
func termToRegex(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}
