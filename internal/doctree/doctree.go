package doctree

import (
	"sort"
	"strings"
)

// Separator is the canonical path separator for root-relative document paths.
const Separator = "/"

// Document is a markdown file discovered under the documentation root.
type Document struct {
	Path  string // Root-relative, slash-separated, e.g. "guide/setup.md"
	Title string // Optional override (front matter); empty means derive from Path
}

// OutlineEntry is a document placed in the numbered outline.
type OutlineEntry struct {
	Path   string `json:"path"`
	Title  string `json:"title,omitempty"`
	Depth  int    `json:"depth"`
	Number int    `json:"number"` // 1-based position among siblings
}

// Depth returns the nesting level of a root-relative path.
func Depth(path string) int {
	return strings.Count(path, Separator)
}

// Less orders paths so that a directory's entries stay contiguous and the
// separator sorts before every ordinary character.
func Less(a, b string) bool {
	return sortKey(a) < sortKey(b)
}

// SortPaths sorts paths in place in pre-order.
func SortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool { return Less(paths[i], paths[j]) })
}

// SortDocuments sorts documents in place by path in pre-order.
func SortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool { return Less(docs[i].Path, docs[j].Path) })
}

func sortKey(p string) string {
	return strings.ReplaceAll(p, Separator, "\x00")
}
