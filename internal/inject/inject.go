// Package inject replaces the body of a named markdown section.
//
// A section starts at a single-line heading "{marker} {title}" and runs up to
// the next boundary heading or the end of the text. When marker is a run of
// n '#' characters the boundary is any ATX heading of level 1..n, so deeper
// headings inside the section are part of its body. For any other marker the
// boundary is the next line that starts with the marker followed by
// whitespace.
package inject

import (
	"regexp"
	"strconv"
	"strings"
)

// span locates a section inside a document.
type span struct {
	headerStart int
	bodyStart   int
	bodyEnd     int
}

// Inject returns content with the body of the "{marker} {title}" section
// replaced by replacement. Content without that section is returned as is.
func Inject(content, marker, title, replacement string) string {
	out, _ := InjectReport(content, marker, title, replacement)
	return out
}

// InjectReport is Inject that also reports whether the section was found.
func InjectReport(content, marker, title, replacement string) (string, bool) {
	s, ok := locate(content, marker, title)
	if !ok {
		return content, false
	}

	var b strings.Builder
	b.Grow(len(content) + len(replacement))
	b.WriteString(content[:s.headerStart])
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(replacement)
	b.WriteString("\n")
	b.WriteString(content[s.bodyEnd:])
	return b.String(), true
}

// Section returns the current body of the "{marker} {title}" section.
func Section(content, marker, title string) (string, bool) {
	s, ok := locate(content, marker, title)
	if !ok {
		return "", false
	}
	return content[s.bodyStart:s.bodyEnd], true
}

func locate(content, marker, title string) (span, bool) {
	if marker == "" {
		return span{}, false
	}

	header := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(marker) + `[ \t]+` + regexp.QuoteMeta(title) + `[ \t]*\r?$`)
	loc := header.FindStringIndex(content)
	if loc == nil {
		return span{}, false
	}

	bodyStart := loc[1]
	if bodyStart < len(content) && content[bodyStart] == '\n' {
		bodyStart++
	}

	bodyEnd := len(content)
	if m := boundary(marker).FindStringIndex(content[bodyStart:]); m != nil {
		bodyEnd = bodyStart + m[0]
	}

	return span{headerStart: loc[0], bodyStart: bodyStart, bodyEnd: bodyEnd}, true
}

// boundary matches the first line that ends a section opened with marker.
func boundary(marker string) *regexp.Regexp {
	if level := headingLevel(marker); level > 0 {
		return regexp.MustCompile(`(?m)^#{1,` + strconv.Itoa(level) + `}(?:[ \t]|\r?$)`)
	}
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(marker) + `(?:[ \t]|\r?$)`)
}

// headingLevel returns n for a marker of n '#' characters (1..6), else 0.
func headingLevel(marker string) int {
	if len(marker) == 0 || len(marker) > 6 || strings.Trim(marker, "#") != "" {
		return 0
	}
	return len(marker)
}
