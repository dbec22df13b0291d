package rules

import (
	"strings"
	"testing"
)

func sellPattern(t *testing.T, window int) *Pattern {
	t.Helper()
	p, err := CompilePattern([]GroupDef{
		{Terms: []string{"sell", "trade"}},
		{Terms: []string{"partner", "advertiser"}, Window: window},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return p
}

func TestProximityMatch(t *testing.T) {
	p := sellPattern(t, 100)

	if !p.Match("we may sell your data to our advertiser partners") {
		t.Error("expected match for sell followed by advertiser within window")
	}
}

func TestOrderSensitive(t *testing.T) {
	p := sellPattern(t, 100)

	// Counterparty before the transfer verb must not match.
	if p.Match("our partner programs are popular") {
		t.Error("expected no match without the transfer verb")
	}
	if p.Match("partner companies never appear before we decline to sell") {
		t.Error("expected no match for reversed concept order")
	}
}

func TestWindowEnforced(t *testing.T) {
	p := sellPattern(t, 100)

	near := "sell " + strings.Repeat("x", 40) + " partner"
	if !p.Match(near) {
		t.Error("expected match inside the window")
	}

	far := "sell " + strings.Repeat("x", 150) + " partner"
	if p.Match(far) {
		t.Error("expected no match beyond the window")
	}
}

func TestCaseInsensitive(t *testing.T) {
	p := sellPattern(t, 100)

	if !p.Match("WE SELL DATA TO PARTNERS") {
		t.Error("expected case-insensitive match")
	}
}

func TestMultiwordTermMatchesWhitespaceRuns(t *testing.T) {
	p, err := CompilePattern([]GroupDef{
		{Terms: []string{"no refund"}},
		{Terms: []string{"whatsoever"}, Window: 100},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !p.Match("there is no\n   refund available whatsoever") {
		t.Error("expected multi-word term to match across a whitespace run")
	}
}

func TestThreeGroupChain(t *testing.T) {
	p, err := CompilePattern([]GroupDef{
		{Terms: []string{"automatic"}},
		{Terms: []string{"charge"}, Window: 50},
		{Terms: []string{"no notice"}, Window: 100},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !p.Match("automatic recurring charges applied with no notice to you") {
		t.Error("expected full three-group chain to match")
	}
	if p.Match("automatic updates are free, charges need no approval") {
		t.Error("expected chain to fail without the final group")
	}
}

func TestMatchAnchorsAnywhere(t *testing.T) {
	p := sellPattern(t, 100)

	// A failed first occurrence must not mask a later valid chain.
	text := "sell " + strings.Repeat("y", 150) + " nothing here. later we trade data with an advertiser"
	if !p.Match(text) {
		t.Error("expected later occurrence of the first group to anchor the chain")
	}
}

func TestCompileRejectsEmptyGroups(t *testing.T) {
	if _, err := CompilePattern(nil); err == nil {
		t.Error("expected error for pattern without groups")
	}
	if _, err := CompilePattern([]GroupDef{{Terms: nil}}); err == nil {
		t.Error("expected error for group without terms")
	}
	if _, err := CompilePattern([]GroupDef{{Terms: []string{"  "}}}); err == nil {
		t.Error("expected error for blank term")
	}
}
