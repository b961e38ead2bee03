package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/outline"
	"github.com/dgallion1/mdtoc/internal/toc"
)

type outlineItem struct {
	doctree.OutlineEntry
	Label string `json:"label"`
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	entries, err := s.outline.Outline(r.Context())
	if err != nil {
		s.log.Error("outline failed", "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	labels := outline.Labels(entries)
	items := make([]outlineItem, len(entries))
	for i, e := range entries {
		items[i] = outlineItem{OutlineEntry: e, Label: labels[i]}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"entries": items,
		"total":   len(items),
	})
}

// handleRenderTOC renders the TOC as it would be injected into the
// document named by the "from" query parameter. Without "from" the
// links are relative to the root.
func (s *Server) handleRenderTOC(w http.ResponseWriter, r *http.Request) {
	entries, err := s.outline.Outline(r.Context())
	if err != nil {
		s.log.Error("outline failed", "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	fromDepth := 0
	if from := r.URL.Query().Get("from"); from != "" {
		found := false
		for _, e := range entries {
			if e.Path == from {
				found = true
				break
			}
		}
		if !found {
			jsonError(w, "document not in outline", http.StatusNotFound)
			return
		}
		fromDepth = doctree.Depth(from)
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(toc.Render(entries, fromDepth) + "\n"))
}
