package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/fsops"
	"github.com/dgallion1/mdtoc/internal/outline"
)

// ErrOutOfDate is returned in check mode when a document's TOC section does
// not match the generated one.
var ErrOutOfDate = errors.New("table of contents out of date")

// DocumentSource lists the documents of a run in pre-order.
type DocumentSource interface {
	Discover(ctx context.Context) ([]doctree.Document, error)
}

// Options controls a generation run.
type Options struct {
	Marker string // Section heading marker, e.g. "##"
	Title  string // Section heading text, e.g. "Contents"
	DryRun bool   // Compute changes without writing
	Check  bool   // Like DryRun, and fail with ErrOutOfDate when anything would change
}

// Generator numbers the documents of a root and injects the TOC into each.
// Documents are processed one after another; each read-transform-write cycle
// is independent of the others.
type Generator struct {
	root   string
	source DocumentSource
	fs     fsops.FS
	log    *slog.Logger
	opts   Options
}

// NewGenerator creates a generator for the documents of source, which live
// under the directory root.
func NewGenerator(root string, source DocumentSource, fs fsops.FS, log *slog.Logger, opts Options) *Generator {
	return &Generator{
		root:   root,
		source: source,
		fs:     fs,
		log:    log,
		opts:   opts,
	}
}

// Outline discovers and numbers the documents without touching them.
func (g *Generator) Outline(ctx context.Context) ([]doctree.OutlineEntry, error) {
	docs, err := g.source.Discover(ctx)
	if err != nil {
		return nil, err
	}
	return outline.Number(docs)
}

// Run processes every document. The first failing document aborts the run;
// the partial report is returned alongside the error.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     newRunID(),
		Root:      g.root,
		StartedAt: time.Now(),
	}
	log := g.log.With("run_id", report.RunID, "root", g.root)

	entries, err := g.Outline(ctx)
	if err != nil {
		return report, err
	}
	log.Debug("outline built", "documents", len(entries))

	labels := outline.Labels(entries)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := g.process(entry, entries, log)
		if err != nil {
			log.Error("document failed", "path", entry.Path, "error", err)
			return report, err
		}
		res.Label = labels[i]
		report.Results = append(report.Results, res)
	}
	report.Duration = time.Since(report.StartedAt)

	log.Info("run complete",
		"documents", len(report.Results),
		"updated", report.Count(StatusUpdated),
		"outdated", report.Count(StatusOutdated),
		"unchanged", report.Count(StatusUnchanged),
		"no_section", report.Count(StatusNoSection),
		"duration_ms", report.Duration.Milliseconds(),
	)

	if g.opts.Check && report.Count(StatusOutdated) > 0 {
		return report, fmt.Errorf("%w: %d document(s)", ErrOutOfDate, report.Count(StatusOutdated))
	}
	return report, nil
}
