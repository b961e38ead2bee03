// Package outline assigns nested sibling numbers (1, 1.1, 1.2, 2, ...) to
// documents ordered by path depth.
//
// Input must be in pre-order and may descend at most one level per step.
// Anything else is rejected with a validation error instead of being
// numbered.
package outline

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/dgallion1/mdtoc/internal/doctree"
)

const (
	depthJumpCode      = "OUTLINE_DEPTH_JUMP"
	stackUnderflowCode = "OUTLINE_STACK_UNDERFLOW"
)

var (
	// ErrDepthJump indicates a document more than one level deeper than its predecessor.
	ErrDepthJump = errors.New("depth increases by more than one level")

	// ErrStackUnderflow indicates an ascent past the outline root.
	ErrStackUnderflow = errors.New("ascent beyond available ancestors")
)

// Numberer is the explicit-stack state machine behind Number. The zero value
// is ready to use.
type Numberer struct {
	prevDepth int
	counter   int
	// ancestors holds one saved counter per level above the current one; the
	// last element belongs to the nearest ancestor.
	ancestors []int
}

// Next numbers doc given every document passed to Next before it.
func (n *Numberer) Next(doc doctree.Document) (doctree.OutlineEntry, error) {
	d := doctree.Depth(doc.Path)
	p := n.prevDepth

	switch {
	case d == p:
		n.counter++

	case d == p+1:
		n.ancestors = append(n.ancestors, n.counter)
		n.counter = 1

	case d > p+1:
		return doctree.OutlineEntry{}, structuralError(ErrDepthJump, depthJumpCode,
			fmt.Sprintf("outline: %s at depth %d follows depth %d", doc.Path, d, p))

	default:
		k := p - d
		if k > len(n.ancestors) {
			return doctree.OutlineEntry{}, structuralError(ErrStackUnderflow, stackUnderflowCode,
				fmt.Sprintf("outline: %s ascends %d levels with %d ancestors", doc.Path, k, len(n.ancestors)))
		}
		resumed := n.ancestors[len(n.ancestors)-k]
		n.ancestors = n.ancestors[:len(n.ancestors)-k]
		n.counter = resumed + 1
	}

	n.prevDepth = d
	return doctree.OutlineEntry{
		Path:   doc.Path,
		Title:  doc.Title,
		Depth:  d,
		Number: n.counter,
	}, nil
}

// Depth returns the depth of the last numbered document.
func (n *Numberer) Depth() int {
	return n.prevDepth
}

// Number assigns outline numbers to docs, preserving their order.
func Number(docs []doctree.Document) ([]doctree.OutlineEntry, error) {
	var n Numberer
	entries := make([]doctree.OutlineEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := n.Next(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Labels returns the dotted label ("2.1.3") of every entry.
func Labels(entries []doctree.OutlineEntry) []string {
	labels := make([]string, len(entries))
	var chain []string
	for i, e := range entries {
		if e.Depth < len(chain) {
			chain = chain[:e.Depth]
		}
		for len(chain) < e.Depth {
			chain = append(chain, "0")
		}
		chain = append(chain, fmt.Sprint(e.Number))
		labels[i] = joinLabel(chain)
	}
	return labels
}

func joinLabel(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}

func structuralError(sentinel error, code, msg string) error {
	return goerrors.Wrap(sentinel, goerrors.CategoryValidation, msg).WithTextCode(code)
}
