// Package extract pulls readable document text out of webpage HTML and
// detects whether a page looks like a legal document at all. It is a
// collaborator of the classifier, not part of it: the engine accepts any
// string, this package just produces better ones.
package extract

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// minBlockLen filters out navigation crumbs and stray labels.
const minBlockLen = 30

// noiseTags are removed wholesale before text collection.
var noiseTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"iframe":   true,
	"button":   true,
	"menu":     true,
	"form":     true,
}

// contentTags are the elements whose text is collected.
var contentTags = map[string]bool{
	"p":       true,
	"li":      true,
	"section": true,
	"article": true,
	"h1":      true,
	"h2":      true,
	"h3":      true,
	"h4":      true,
}

// ReadableText parses HTML and returns the concatenated text of content
// elements, noise elements removed, blocks shorter than minBlockLen
// dropped, blocks joined by blank lines. A parse failure returns an error;
// pages with no collectable content return an empty string, not an error.
func ReadableText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var blocks []string
	collectBlocks(doc, &blocks)
	return strings.Join(blocks, "\n\n"), nil
}

// collectBlocks walks the tree. A content element contributes its whole
// text as one block and is not descended into again, so nested content
// elements do not duplicate text.
func collectBlocks(n *html.Node, blocks *[]string) {
	if n.Type == html.ElementNode {
		if noiseTags[n.Data] {
			return
		}
		if contentTags[n.Data] {
			text := strings.TrimSpace(nodeText(n))
			if len(text) > minBlockLen {
				*blocks = append(*blocks, text)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, blocks)
	}
}

// nodeText flattens all text under n, skipping noise subtrees and
// collapsing whitespace runs.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		case html.ElementNode:
			if noiseTags[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
