// Package render turns CMS article bodies into HTML or plain text for
// terminal previews.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		// CMS rich text may already be HTML; pass it through untouched.
		gmhtml.WithUnsafe(),
	),
)

// HTML renders Markdown (or HTML) content to HTML.
func HTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// PlainText renders content and strips it down to readable text, one block
// per line.
func PlainText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	rendered, err := HTML(content)
	if err != nil {
		rendered = content
	}

	node, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return content
	}

	var builder strings.Builder
	extractText(node, &builder)
	return collapseBlankLines(builder.String())
}

// Summary collapses whitespace and cuts text at the last word boundary
// before limit, appending "...".
func Summary(text string, limit int) string {
	clean := strings.Join(strings.Fields(text), " ")
	if clean == "" || limit <= 0 {
		return ""
	}

	runes := []rune(clean)
	if len(runes) <= limit {
		return clean
	}

	trimmed := string(runes[:limit])
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}

var blockElements = map[string]bool{
	"br": true, "p": true, "li": true, "div": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true,
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if blockElements[node.Data] {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && blockElements[node.Data] && node.Data != "br" {
		builder.WriteRune('\n')
	}
}

func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
