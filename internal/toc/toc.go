package toc

import (
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/mdtoc/internal/doctree"
)

// indentWidth is the number of spaces per outline level. Three spaces keep
// nested items aligned under the text of a "1. " list marker.
const indentWidth = 3

// MarkdownExtensions lists the extensions stripped when deriving titles.
var MarkdownExtensions = []string{".md", ".markdown"}

// Render formats entries as an indented, linked markdown list whose links
// resolve from a document fromDepth levels below the root.
func Render(entries []doctree.OutlineEntry, fromDepth int) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, Line(e, fromDepth))
	}
	return strings.Join(lines, "\n")
}

// Line renders a single entry.
func Line(e doctree.OutlineEntry, fromDepth int) string {
	title := e.Title
	if title == "" {
		title = Title(e.Path)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indentWidth*e.Depth))
	b.WriteString(strconv.Itoa(e.Number))
	b.WriteString(". [")
	b.WriteString(title)
	b.WriteString("](")
	b.WriteString(RelativeLink(e.Path, fromDepth))
	b.WriteString(")")
	return b.String()
}

// Title converts a file name like "getting-started.md" into "Getting Started".
func Title(p string) string {
	name := path.Base(p)
	for _, ext := range MarkdownExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}

	segments := strings.Split(name, "-")
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}
	return strings.Join(segments, " ")
}

// RelativeLink returns the link to p as seen from a document fromDepth levels
// below the root.
func RelativeLink(p string, fromDepth int) string {
	if fromDepth < 0 {
		fromDepth = 0
	}
	return "./" + strings.Repeat("../", fromDepth) + p
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
