package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	goldparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading as goldmark sees it, so headings inside code
// blocks or HTML are never reported.
type Heading struct {
	Level int
	Text  string
	ID    string // Auto-generated anchor id
	Line  int    // 1-based source line
}

// MarkdownParser inspects and renders markdown with goldmark. The zero value
// is not usable; call NewMarkdownParser.
type MarkdownParser struct {
	md goldmark.Markdown
}

// NewMarkdownParser returns a parser with GFM extensions and automatic
// heading ids.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(goldparser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (p *MarkdownParser) parse(src []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(src))
}

// Headings returns every heading in document order.
func (p *MarkdownParser) Headings(src []byte) []Heading {
	doc := p.parse(src)

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		heading := Heading{
			Level: h.Level,
			Text:  extractText(h, src),
		}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		if lines := h.Lines(); lines.Len() > 0 {
			heading.Line = bytes.Count(src[:lines.At(0).Start], []byte("\n")) + 1
		}
		headings = append(headings, heading)
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Links returns the destinations of inline links in document order.
func (p *MarkdownParser) Links(src []byte) []string {
	doc := p.parse(src)

	var links []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			links = append(links, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})
	return links
}

// RenderHTML converts markdown (front matter already stripped) to HTML.
func (p *MarkdownParser) RenderHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
