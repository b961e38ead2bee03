package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/inject"
	"github.com/dgallion1/mdtoc/internal/toc"
)

// process renders the TOC as seen from target and injects it into target's
// section.
func (g *Generator) process(target doctree.OutlineEntry, entries []doctree.OutlineEntry, log *slog.Logger) (Result, error) {
	log = log.With("path", target.Path)
	res := Result{Path: target.Path}

	full := filepath.Join(g.root, filepath.FromSlash(target.Path))
	data, err := g.fs.ReadFile(full)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", target.Path, err)
	}

	rendered := toc.Render(entries, target.Depth)
	out, found := inject.InjectReport(string(data), g.opts.Marker, g.opts.Title, rendered)
	switch {
	case !found:
		log.Debug("section not found", "marker", g.opts.Marker, "title", g.opts.Title)
		res.Status = StatusNoSection
		return res, nil
	case out == string(data):
		log.Debug("toc up to date")
		res.Status = StatusUnchanged
		res.ContentHash = ContentHashHex(data)
		return res, nil
	}

	res.ContentHash = ContentHashHex([]byte(out))
	if g.opts.DryRun || g.opts.Check {
		log.Info("toc out of date")
		res.Status = StatusOutdated
		return res, nil
	}

	info, err := g.fs.Stat(full)
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", target.Path, err)
	}
	if err := g.fs.AtomicWrite(full, []byte(out), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write %s: %w", target.Path, err)
	}
	log.Info("toc updated")
	res.Status = StatusUpdated
	return res, nil
}
