// Package source discovers the markdown documents under a documentation root.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/parser"
)

// Options configures discovery.
type Options struct {
	// Extensions selects document files (defaults to ".md").
	Extensions []string
	// Exclude lists glob patterns, relative to the root, of paths to skip.
	// "*" stops at "/", "**" crosses directories.
	Exclude []string
	// FrontMatterTitles reads each document and uses its front matter
	// "title" in place of the file-name title.
	FrontMatterTitles bool
	// IncludeHidden walks directories and files whose name starts with ".".
	IncludeHidden bool
}

// Source lists documents from a filesystem rooted at the documentation root.
type Source struct {
	fsys    fs.FS
	opts    Options
	exclude []glob.Glob
}

// New compiles the exclude patterns and returns a Source over fsys.
func New(fsys fs.FS, opts Options) (*Source, error) {
	s := &Source{fsys: fsys, opts: opts}
	for _, pattern := range opts.Exclude {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}
		s.exclude = append(s.exclude, g)
	}
	return s, nil
}

// Discover returns every document under the root in pre-order.
func (s *Source) Discover(ctx context.Context) ([]doctree.Document, error) {
	var docs []doctree.Document

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		if !s.opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if s.excluded(p) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !parser.HasExtension(p, s.opts.Extensions) {
			return nil
		}

		doc := doctree.Document{Path: p}
		if s.opts.FrontMatterTitles {
			title, err := s.title(p)
			if err != nil {
				return err
			}
			doc.Title = title
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}

	doctree.SortDocuments(docs)
	return docs, nil
}

// Paths returns the paths of docs.
func Paths(docs []doctree.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Path
	}
	return out
}

func (s *Source) excluded(p string) bool {
	for _, g := range s.exclude {
		if g.Match(p) || g.Match(path.Base(p)) {
			return true
		}
	}
	return false
}

func (s *Source) title(p string) (string, error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	title, _, err := parser.FrontMatterTitle(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p, err)
	}
	return title, nil
}
