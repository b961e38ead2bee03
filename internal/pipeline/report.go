package pipeline

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Status is the outcome of processing one document.
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusOutdated  Status = "outdated" // would change; dry run or check mode
	StatusNoSection Status = "no_section"
)

// Result records what happened to a single document.
type Result struct {
	Path        string `json:"path"`
	Label       string `json:"label"`
	Status      Status `json:"status"`
	ContentHash string `json:"content_hash,omitempty"`
}

// Report summarizes one generation run.
type Report struct {
	RunID     string        `json:"run_id"`
	Root      string        `json:"root"`
	Results   []Result      `json:"results"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// Count returns the number of results with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Changed reports whether any document was, or would be, rewritten.
func (r *Report) Changed() bool {
	return r.Count(StatusUpdated) > 0 || r.Count(StatusOutdated) > 0
}

// Outdated returns the paths that would change.
func (r *Report) Outdated() []string {
	var paths []string
	for _, res := range r.Results {
		if res.Status == StatusOutdated {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
