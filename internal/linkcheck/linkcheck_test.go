package linkcheck

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/parser"
)

func check(t *testing.T, fsys fstest.MapFS, paths ...string) []Problem {
	t.Helper()
	var docs []doctree.Document
	for _, p := range paths {
		docs = append(docs, doctree.Document{Path: p})
	}
	problems, err := New(fsys, parser.NewMarkdownParser(), "##", "Contents").Check(docs)
	require.NoError(t, err)
	return problems
}

func TestCheck_ValidTOC(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md":   {Data: []byte("# A\n## Contents\n1. [A](./a.md)\n   1. [C](./b/c.md)\n")},
		"b/c.md": {Data: []byte("# C\n## Contents\n1. [A](./../a.md)\n   1. [C](./../b/c.md#top)\n")},
	}
	assert.Empty(t, check(t, fsys, "a.md", "b/c.md"))
}

func TestCheck_BrokenLinks(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md":   {Data: []byte("## Contents\n1. [Gone](./gone.md)\n2. [Out](./../outside.md)\n3. [Web](https://example.com)\n4. [Dir](./b)\n")},
		"b/c.md": {Data: []byte("x")},
	}
	problems := check(t, fsys, "a.md")

	require.Len(t, problems, 3)
	for _, p := range problems {
		assert.Equal(t, KindBrokenLink, p.Kind)
		assert.Equal(t, SeverityError, p.Severity)
	}
	assert.Contains(t, problems[0].Detail, "gone.md does not exist")
	assert.Contains(t, problems[1].Detail, "outside the documentation root")
	assert.Contains(t, problems[2].Detail, "is a directory")
	assert.True(t, HasErrors(problems))
}

func TestCheck_LinksOutsideSectionIgnored(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": {Data: []byte("# A\n[broken](./nope.md)\n## Contents\n1. [A](./a.md)\n## After\n[also broken](./nope.md)\n")},
	}
	assert.Empty(t, check(t, fsys, "a.md"))
}

func TestCheck_MissingSectionIsWarning(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("# A\n")}}
	problems := check(t, fsys, "a.md")

	require.Len(t, problems, 1)
	assert.Equal(t, KindMissingSection, problems[0].Kind)
	assert.False(t, HasErrors(problems))
}

func TestCheck_SectionInsideCodeBlock(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("# A\n```\n## Contents\n```\n")}}
	problems := check(t, fsys, "a.md")

	require.NotEmpty(t, problems)
	assert.Equal(t, KindSectionInCode, problems[0].Kind)
}

func TestCheck_DuplicateSection(t *testing.T) {
	fsys := fstest.MapFS{"a.md": {Data: []byte("## Contents\n1. [A](./a.md)\n## Contents\nold\n")}}
	problems := check(t, fsys, "a.md")

	require.Len(t, problems, 1)
	assert.Equal(t, KindDuplicateSection, problems[0].Kind)
	assert.Equal(t, SeverityWarning, problems[0].Severity)
}

func TestCheck_UnreadableDocument(t *testing.T) {
	_, err := New(fstest.MapFS{}, parser.NewMarkdownParser(), "##", "Contents").
		Check([]doctree.Document{{Path: "missing.md"}})
	require.Error(t, err)
}

func TestProblem_String(t *testing.T) {
	p := Problem{Path: "a.md", Kind: KindBrokenLink, Detail: "x"}
	assert.Equal(t, "a.md: broken_link: x", p.String())
}
