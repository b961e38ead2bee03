// Package linkcheck verifies the injected TOC sections of a documentation tree.
package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/inject"
	"github.com/dgallion1/mdtoc/internal/parser"
)

// Severity classifies a problem.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind names the check that found a problem.
type Kind string

const (
	KindMissingSection   Kind = "missing_section"
	KindDuplicateSection Kind = "duplicate_section"
	KindSectionInCode    Kind = "section_not_a_heading"
	KindBrokenLink       Kind = "broken_link"
)

// Problem is one finding for one document.
type Problem struct {
	Path     string   `json:"path"`
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Path, p.Kind, p.Detail)
}

// Checker inspects documents read from fsys, the documentation root.
type Checker struct {
	fsys   fs.FS
	md     *parser.MarkdownParser
	marker string
	title  string
}

// New returns a Checker for the "{marker} {title}" section.
func New(fsys fs.FS, md *parser.MarkdownParser, marker, title string) *Checker {
	return &Checker{fsys: fsys, md: md, marker: marker, title: title}
}

// Check inspects every document and returns the problems found, in document
// order. Unreadable documents abort the check.
func (c *Checker) Check(docs []doctree.Document) ([]Problem, error) {
	var problems []Problem
	for _, doc := range docs {
		data, err := fs.ReadFile(c.fsys, doc.Path)
		if err != nil {
			return problems, fmt.Errorf("read %s: %w", doc.Path, err)
		}
		problems = append(problems, c.checkDocument(doc.Path, string(data))...)
	}
	return problems, nil
}

// HasErrors reports whether any problem is an error.
func HasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (c *Checker) checkDocument(docPath, content string) []Problem {
	body, ok := inject.Section(content, c.marker, c.title)
	if !ok {
		return []Problem{{
			Path:     docPath,
			Kind:     KindMissingSection,
			Severity: SeverityWarning,
			Detail:   fmt.Sprintf("no %q section", c.marker+" "+c.title),
		}}
	}

	var problems []Problem
	if level := markerLevel(c.marker); level > 0 {
		matches := 0
		for _, h := range c.md.Headings(parser.StripFrontMatter([]byte(content))) {
			if h.Level == level && h.Text == c.title {
				matches++
			}
		}
		switch {
		case matches == 0:
			problems = append(problems, Problem{
				Path:     docPath,
				Kind:     KindSectionInCode,
				Severity: SeverityError,
				Detail:   "the matched section line is not a markdown heading (code block?)",
			})
		case matches > 1:
			problems = append(problems, Problem{
				Path:     docPath,
				Kind:     KindDuplicateSection,
				Severity: SeverityWarning,
				Detail:   fmt.Sprintf("%d sections named %q; only the first is updated", matches, c.title),
			})
		}
	}

	for _, dest := range c.md.Links([]byte(body)) {
		if detail := c.resolve(docPath, dest); detail != "" {
			problems = append(problems, Problem{
				Path:     docPath,
				Kind:     KindBrokenLink,
				Severity: SeverityError,
				Detail:   detail,
			})
		}
	}
	return problems
}

// resolve returns a description of why dest is broken, or "" when it
// resolves to an existing file.
func (c *Checker) resolve(docPath, dest string) string {
	u, err := url.Parse(dest)
	if err != nil {
		return fmt.Sprintf("%s: %v", dest, err)
	}
	if u.Scheme != "" || u.Host != "" || u.Path == "" {
		return ""
	}

	target := path.Join(path.Dir(docPath), u.Path)
	if target == ".." || strings.HasPrefix(target, "../") || path.IsAbs(u.Path) {
		return fmt.Sprintf("%s: points outside the documentation root", dest)
	}
	info, err := fs.Stat(c.fsys, target)
	if err != nil {
		return fmt.Sprintf("%s: %s does not exist", dest, target)
	}
	if info.IsDir() {
		return fmt.Sprintf("%s: %s is a directory", dest, target)
	}
	return ""
}

func markerLevel(marker string) int {
	if marker == "" || len(marker) > 6 || strings.Trim(marker, "#") != "" {
		return 0
	}
	return len(marker)
}
