package doctree

import (
	"reflect"
	"testing"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"a.md", 0},
		{"", 0},
		{"b/c.md", 1},
		{"b/c/d.md", 2},
		{"a/b/c/d/e.md", 4},
	}
	for _, tt := range tests {
		if got := Depth(tt.path); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestSortPaths_SeparatorSortsFirst(t *testing.T) {
	paths := []string{
		"guide/setup.md",
		"guide-extra.md",
		"guide.md",
		"guide/advanced/tuning.md",
		"about.md",
		"guide/zz.md",
	}
	SortPaths(paths)

	want := []string{
		"about.md",
		"guide/advanced/tuning.md",
		"guide/setup.md",
		"guide/zz.md",
		"guide-extra.md",
		"guide.md",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected order:\n got %v\nwant %v", paths, want)
	}
}

func TestSortDocuments(t *testing.T) {
	docs := []Document{{Path: "e.md"}, {Path: "b/d.md"}, {Path: "a.md"}, {Path: "b/c.md"}}
	SortDocuments(docs)

	var got []string
	for _, d := range docs {
		got = append(got, d.Path)
	}
	want := []string{"a.md", "b/c.md", "b/d.md", "e.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
