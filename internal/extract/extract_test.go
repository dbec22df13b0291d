package extract

import (
	"strings"
	"testing"
)

const samplePage = `<html><head><title>Terms</title><style>p{color:red}</style></head>
<body>
<nav><a href="/">Home</a> | <a href="/about">About this very long navigation bar</a></nav>
<h1>Terms of Service for Example Corp</h1>
<p>By using this service you agree to the following terms and conditions.</p>
<p>Short.</p>
<script>console.log("this text must never appear in the output")</script>
<footer>Copyright Example Corp, all rights reserved, every year forever.</footer>
</body></html>`

func TestReadableTextCollectsContent(t *testing.T) {
	text, err := ReadableText(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}

	if !strings.Contains(text, "Terms of Service for Example Corp") {
		t.Error("expected h1 text in output")
	}
	if !strings.Contains(text, "you agree to the following terms") {
		t.Error("expected paragraph text in output")
	}
}

func TestReadableTextDropsNoise(t *testing.T) {
	text, err := ReadableText(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}

	if strings.Contains(text, "never appear") {
		t.Error("script content leaked into output")
	}
	if strings.Contains(text, "navigation bar") {
		t.Error("nav content leaked into output")
	}
	if strings.Contains(text, "Copyright Example Corp") {
		t.Error("footer content leaked into output")
	}
}

func TestReadableTextDropsShortBlocks(t *testing.T) {
	text, err := ReadableText(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}

	if strings.Contains(text, "Short.") {
		t.Error("expected blocks under the minimum length to be dropped")
	}
}

func TestReadableTextNoDuplicateNestedContent(t *testing.T) {
	page := `<html><body><section>
	<p>This paragraph is nested inside a section element of the document.</p>
	</section></body></html>`

	text, err := ReadableText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}

	if got := strings.Count(text, "nested inside a section"); got != 1 {
		t.Errorf("nested content appeared %d times, want 1", got)
	}
}

func TestReadableTextCollapsesWhitespace(t *testing.T) {
	page := "<html><body><p>spaced   out\n\t words that stretch well past the minimum length</p></body></html>"

	text, err := ReadableText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}
	if !strings.Contains(text, "spaced out words") {
		t.Errorf("whitespace not collapsed: %q", text)
	}
}

func TestReadableTextEmptyPage(t *testing.T) {
	text, err := ReadableText(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("ReadableText: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty output, got %q", text)
	}
}

func TestIsLegalPageByURL(t *testing.T) {
	if !IsLegalPage("https://example.com/privacy-policy", "", "") {
		t.Error("expected URL keyword match")
	}
}

func TestIsLegalPageByTitle(t *testing.T) {
	if !IsLegalPage("https://example.com/page", "Terms of Service", "") {
		t.Error("expected title keyword match")
	}
}

func TestIsLegalPageByHeading(t *testing.T) {
	if !IsLegalPage("", "", "End User License Agreement") {
		t.Error("expected heading keyword match")
	}
}

func TestIsLegalPageCaseInsensitive(t *testing.T) {
	if !IsLegalPage("https://example.com/GDPR", "", "") {
		t.Error("expected case-insensitive keyword match")
	}
}

func TestIsLegalPageNegative(t *testing.T) {
	if IsLegalPage("https://example.com/blog/cooking", "Best Pasta Recipes", "Dinner Ideas") {
		t.Error("expected no match for an ordinary page")
	}
}
