package outline

import (
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/dgallion1/mdtoc/internal/doctree"
)

func docs(paths ...string) []doctree.Document {
	out := make([]doctree.Document, len(paths))
	for i, p := range paths {
		out[i] = doctree.Document{Path: p}
	}
	return out
}

func numbers(entries []doctree.OutlineEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNumber_Siblings(t *testing.T) {
	entries, err := Number(docs("a.md", "b.md", "c.md", "d.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4}
	if got := numbers(entries); !equalInts(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNumber_DescendAndAscend(t *testing.T) {
	entries, err := Number(docs("a.md", "b/c.md", "b/d.md", "e.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 1, 2, 2}
	if got := numbers(entries); !equalInts(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, p := range []string{"a.md", "b/c.md", "b/d.md", "e.md"} {
		if entries[i].Path != p {
			t.Errorf("entry %d: expected path %q, got %q", i, p, entries[i].Path)
		}
	}
	if entries[1].Depth != 1 || entries[3].Depth != 0 {
		t.Errorf("unexpected depths: %+v", entries)
	}
}

func TestNumber_MultiLevelAscentRestoresAncestorCounter(t *testing.T) {
	entries, err := Number(docs(
		"a.md",          // 1
		"b.md",          // 2
		"b/x.md",        // 2.1
		"b/y.md",        // 2.2
		"b/y/z.md",      // 2.2.1
		"b/y/z/deep.md", // 2.2.1.1
		"c.md",          // 3
		"c/x.md",        // 3.1
		"d.md",          // 4
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 1, 2, 1, 1, 3, 1, 4}
	if got := numbers(entries); !equalInts(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	labels := Labels(entries)
	wantLabels := []string{"1", "2", "2.1", "2.2", "2.2.1", "2.2.1.1", "3", "3.1", "4"}
	for i := range wantLabels {
		if labels[i] != wantLabels[i] {
			t.Errorf("label %d: expected %q, got %q", i, wantLabels[i], labels[i])
		}
	}
}

func TestNumber_AscendToIntermediateLevel(t *testing.T) {
	entries, err := Number(docs("a/b.md", "a/b/c.md", "a/b/c/d.md", "a/e.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a/e.md resumes the depth-1 group after a/b.md.
	want := []int{1, 1, 1, 2}
	if got := numbers(entries); !equalInts(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNumber_FirstDocumentIsOne(t *testing.T) {
	entries, err := Number(docs("guide/intro.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Number != 1 || entries[0].Depth != 1 {
		t.Fatalf("expected number 1 at depth 1, got %+v", entries[0])
	}
}

func TestNumber_Empty(t *testing.T) {
	entries, err := Number(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestNumber_KeepsTitleOverride(t *testing.T) {
	entries, err := Number([]doctree.Document{{Path: "a.md", Title: "Alpha"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Title != "Alpha" {
		t.Fatalf("expected title %q, got %q", "Alpha", entries[0].Title)
	}
}

func TestNumber_RejectsDepthJump(t *testing.T) {
	_, err := Number(docs("a.md", "b/c/d/e.md"))
	if err == nil {
		t.Fatal("expected error for depth jump")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if !strings.Contains(err.Error(), "b/c/d/e.md") {
		t.Errorf("expected error to name the offending path, got %v", err)
	}
}

func TestNumber_RejectsFirstDocumentTooDeep(t *testing.T) {
	_, err := Number(docs("a/b/c.md"))
	if err == nil {
		t.Fatal("expected error when the first document starts two levels down")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestNumberer_StackMatchesDepth(t *testing.T) {
	var n Numberer
	for _, p := range []string{"a.md", "a/b.md", "a/b/c.md", "a/d.md", "e.md"} {
		if _, err := n.Next(doctree.Document{Path: p}); err != nil {
			t.Fatalf("Next(%q): %v", p, err)
		}
		if len(n.ancestors) != doctree.Depth(p) {
			t.Fatalf("after %q: stack length %d, depth %d", p, len(n.ancestors), doctree.Depth(p))
		}
		if n.Depth() != doctree.Depth(p) {
			t.Fatalf("after %q: Depth() = %d", p, n.Depth())
		}
	}
}

func TestNumberer_UnderflowGuard(t *testing.T) {
	// Corrupt the state so an ascent outruns the stack.
	n := Numberer{prevDepth: 3, counter: 1, ancestors: []int{1}}
	_, err := n.Next(doctree.Document{Path: "a.md"})
	if err == nil {
		t.Fatal("expected underflow error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
