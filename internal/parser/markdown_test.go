package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection ` + "`A1`" + `

## Contents

1. [A](./a.md)
`
	p := NewMarkdownParser()
	headings := p.Headings([]byte(input))

	want := []struct {
		level int
		text  string
		line  int
	}{
		{1, "Title", 1},
		{2, "Section A", 5},
		{3, "Subsection A1", 9},
		{2, "Contents", 11},
	}
	if len(headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(headings), headings)
	}
	for i, w := range want {
		h := headings[i]
		if h.Level != w.level || h.Text != w.text || h.Line != w.line {
			t.Errorf("heading %d: expected (%d, %q, line %d), got (%d, %q, line %d)",
				i, w.level, w.text, w.line, h.Level, h.Text, h.Line)
		}
	}
	if headings[3].ID != "contents" {
		t.Errorf("expected auto id %q, got %q", "contents", headings[3].ID)
	}
}

func TestMarkdownParser_HeadingsSkipCodeBlocks(t *testing.T) {
	input := "# Real\n\n```\n## Contents\n```\n"
	p := NewMarkdownParser()
	headings := p.Headings([]byte(input))
	if len(headings) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(headings), headings)
	}
	if headings[0].Text != "Real" {
		t.Errorf("expected %q, got %q", "Real", headings[0].Text)
	}
}

func TestMarkdownParser_Links(t *testing.T) {
	input := "1. [A](./a.md)\n   1. [C](./../b/c.md)\n\nSee [site](https://example.com) and `[not](./a link.md)`.\n"
	p := NewMarkdownParser()
	links := p.Links([]byte(input))

	want := []string{"./a.md", "./../b/c.md", "https://example.com"}
	if len(links) != len(want) {
		t.Fatalf("expected %v, got %v", want, links)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("link %d: expected %q, got %q", i, want[i], links[i])
		}
	}
}

func TestMarkdownParser_RenderHTML(t *testing.T) {
	p := NewMarkdownParser()
	out, err := p.RenderHTML([]byte("## Contents\n\n1. [A](./a.md)\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<h2 id="contents">Contents</h2>`) {
		t.Errorf("expected heading with id, got %q", html)
	}
	if !strings.Contains(html, `<a href="./a.md">A</a>`) {
		t.Errorf("expected link, got %q", html)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := NewMarkdownParser()
	if h := p.Headings(nil); len(h) != 0 {
		t.Errorf("expected no headings, got %d", len(h))
	}
	if l := p.Links([]byte("")); len(l) != 0 {
		t.Errorf("expected no links, got %d", len(l))
	}
}

func TestFrontMatterTitle(t *testing.T) {
	src := []byte("---\ntitle: Getting Started Guide\n---\n# Body\n")
	title, body, err := FrontMatterTitle(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Getting Started Guide" {
		t.Errorf("expected title %q, got %q", "Getting Started Guide", title)
	}
	if !strings.Contains(string(body), "# Body") || strings.Contains(string(body), "title:") {
		t.Errorf("expected body without front matter, got %q", body)
	}
}

func TestFrontMatterTitle_NoFrontMatter(t *testing.T) {
	src := []byte("# Just markdown\n")
	title, body, err := FrontMatterTitle(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "" {
		t.Errorf("expected empty title, got %q", title)
	}
	if string(body) != string(src) {
		t.Errorf("expected body unchanged, got %q", body)
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		filename string
		exts     []string
		want     bool
	}{
		{"a.md", nil, true},
		{"a.MD", nil, true},
		{"a.markdown", nil, false},
		{"a.markdown", []string{".md", ".markdown"}, true},
		{"a.txt", []string{".md"}, false},
		{"README", nil, false},
	}
	for _, tt := range tests {
		if got := HasExtension(tt.filename, tt.exts); got != tt.want {
			t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.filename, tt.exts, got, tt.want)
		}
	}
}
