package fold

import (
	"sort"

	"github.com/dshills/keystorm-core/internal/engine/augtree"
	"github.com/dshills/keystorm-core/internal/engine/fixup"
)

// node is one fold in the augmented tree: Gap unfolded characters
// since the previous fold's end (or document start), followed by a
// folded span of Range characters. The fold itself has zero width in
// folded (collapsed) coordinate space.
type node struct {
	Gap   int64
	Range int64
}

type summary struct {
	Chars       int64 // total unfolded characters covered (gap + range)
	FoldedChars int64 // characters hidden inside folded ranges
	Nodes       int64
}

func (s summary) Combine(o summary) summary {
	return summary{Chars: s.Chars + o.Chars, FoldedChars: s.FoldedChars + o.FoldedChars, Nodes: s.Nodes + o.Nodes}
}

func leaf(n node) summary { return summary{Chars: n.Gap + n.Range, FoldedChars: n.Range, Nodes: 1} }

// FoldSpan is one fold's extent in unfolded character coordinates.
type FoldSpan struct {
	Begin, End int64
}

// Registry is spec.md's folding registry (spec.md 4.8). Folds are kept
// as a sorted slice of spans, the source of truth, and the augmented
// tree queried by FoldedToUnfoldedChar/UnfoldedToFoldedChar is rebuilt
// from it on every mutation — a reconstruct-on-mutation tradeoff
// (internal/engine/lines, by contrast, splices its line records in
// place), appropriate here since folds change far less often than
// they're queried.
type Registry struct {
	spans []FoldSpan
	total int64
	tree  *augtree.Tree[node, summary]
}

// New creates a registry with no folds over a document of totalChars
// unfolded characters.
func New(totalChars int64) *Registry {
	r := &Registry{total: totalChars}
	r.rebuild()
	return r
}

func (r *Registry) rebuild() {
	tree := augtree.New[node, summary](leaf, summary{})
	nodes := make([]node, 0, len(r.spans)+1)
	var prevEnd int64
	for _, sp := range r.spans {
		nodes = append(nodes, node{Gap: sp.Begin - prevEnd, Range: sp.End - sp.Begin})
		prevEnd = sp.End
	}
	nodes = append(nodes, node{Gap: r.total - prevEnd})
	tree.InsertSliceAt(0, nodes)
	r.tree = tree
}

// TotalFolds returns the number of folds.
func (r *Registry) TotalFolds() int { return len(r.spans) }

// Folds returns a copy of the current fold spans, in order.
func (r *Registry) Folds() []FoldSpan {
	out := make([]FoldSpan, len(r.spans))
	copy(out, r.spans)
	return out
}

// FoldedLen returns the document's length in folded (collapsed)
// character coordinates.
func (r *Registry) FoldedLen() int64 { return r.tree.Summary().Chars - r.tree.Summary().FoldedChars }

// AddFold folds [begin, end) (spec.md 4.8: "removes any folds in
// [begin, end], adjusts the gap of the next surviving fold to absorb
// the union, and inserts the new node"). Removing the overlapping
// folds and rebuilding achieves the same union-absorption without
// separate gap bookkeeping.
func (r *Registry) AddFold(begin, end int64) {
	if begin < 0 {
		begin = 0
	}
	if end > r.total {
		end = r.total
	}
	if begin >= end {
		return
	}
	kept := make([]FoldSpan, 0, len(r.spans)+1)
	for _, sp := range r.spans {
		if sp.End <= begin || sp.Begin >= end {
			kept = append(kept, sp)
		}
	}
	kept = append(kept, FoldSpan{begin, end})
	sort.Slice(kept, func(i, j int) bool { return kept[i].Begin < kept[j].Begin })
	r.spans = kept
	r.rebuild()
}

// RemoveFoldAt removes the fold at index i (spec.md 4.8's
// remove_fold: "adds the erased (gap+range) to the next fold's gap" —
// implicit in the rebuild, since the removed span's extent simply
// becomes part of whichever neighboring gap now spans it).
func (r *Registry) RemoveFoldAt(i int) bool {
	if i < 0 || i >= len(r.spans) {
		return false
	}
	r.spans = append(r.spans[:i], r.spans[i+1:]...)
	r.rebuild()
	return true
}

type foldedSelector struct {
	target               int64
	foldedBase, unfolded int64
}

func (s *foldedSelector) Visit(n node, left summary) augtree.Direction {
	leftFolded := left.Chars - left.FoldedChars
	if s.target <= leftFolded {
		return augtree.Left
	}
	s.foldedBase = leftFolded
	s.unfolded = left.Chars
	if s.target <= leftFolded+n.Gap {
		return augtree.Hit
	}
	return augtree.Right
}

// FoldedToUnfoldedChar converts a position in folded (collapsed)
// character coordinates to the corresponding unfolded position. A
// folded position that lands exactly on a fold's boundary resolves to
// that fold's unfolded start.
func (r *Registry) FoldedToUnfoldedChar(p int64) int64 {
	foldedLen := r.FoldedLen()
	if p <= 0 {
		return 0
	}
	if p > foldedLen {
		p = foldedLen
	}
	sel := &foldedSelector{target: p}
	it := r.tree.Find(sel)
	if !it.Valid() {
		return r.total
	}
	return sel.unfolded + (p - sel.foldedBase)
}

type unfoldedSelector struct {
	target               int64
	unfoldedBase, folded int64
}

func (s *unfoldedSelector) Visit(n node, left summary) augtree.Direction {
	if s.target < left.Chars {
		return augtree.Left
	}
	s.unfoldedBase = left.Chars
	s.folded = left.Chars - left.FoldedChars
	if s.target < left.Chars+n.Gap+n.Range {
		return augtree.Hit
	}
	return augtree.Right
}

// UnfoldedToFoldedChar converts an unfolded character position to
// folded coordinates, clamping to the fold's gap boundary when p
// lands inside a folded region (spec.md 4.8).
func (r *Registry) UnfoldedToFoldedChar(p int64) int64 {
	if p <= 0 {
		return 0
	}
	if p >= r.total {
		return r.FoldedLen()
	}
	sel := &unfoldedSelector{target: p}
	it := r.tree.Find(sel)
	if !it.Valid() {
		return r.FoldedLen()
	}
	n := it.Value()
	offset := p - sel.unfoldedBase
	if offset <= n.Gap {
		return sel.folded + offset
	}
	return sel.folded + n.Gap
}

// Fixup patches every fold's boundaries through a character-coordinate
// position journal (spec.md 5: "patched through the position journal
// identically to other character-indexed observers"), dropping any
// fold whose entire span was deleted. newTotal is the document's
// character count after the edit.
func (r *Registry) Fixup(journal []fixup.Entry, newTotal int64) {
	kept := make([]FoldSpan, 0, len(r.spans))
	for _, sp := range r.spans {
		begin := fixup.Patch(journal, sp.Begin, fixup.Front)
		end := fixup.Patch(journal, sp.End, fixup.Back)
		if begin < end {
			kept = append(kept, FoldSpan{begin, end})
		}
	}
	r.spans = kept
	r.total = newTotal
	r.rebuild()
}
