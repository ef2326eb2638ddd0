package softbreak

import (
	"github.com/dshills/keystorm-core/internal/engine/augtree"
	"github.com/dshills/keystorm-core/internal/engine/lines"
)

// node is one soft-break entry: characters since the previous break
// (or document start).
type node struct {
	Length int64
}

type summary struct {
	Chars  int64
	Breaks int64
}

func (s summary) Combine(o summary) summary {
	return summary{Chars: s.Chars + o.Chars, Breaks: s.Breaks + o.Breaks}
}

func leaf(n node) summary { return summary{Chars: n.Length, Breaks: 1} }

// Registry is spec.md's soft-linebreak registry. An empty registry has
// no soft breaks.
type Registry struct {
	tree *augtree.Tree[node, summary]
}

// New creates a registry with no soft breaks.
func New() *Registry {
	return &Registry{tree: augtree.New[node, summary](leaf, summary{})}
}

// TotalSoftBreaks returns the number of soft breaks.
func (r *Registry) TotalSoftBreaks() int64 { return r.tree.Summary().Breaks }

// SetSoftbreaks rebuilds the registry wholesale from an ascending list
// of character offsets at which a soft break occurs (spec.md 4.6: "the
// core provides a one-shot set_softbreaks primitive; the caller
// supplies the new softbreak list").
func (r *Registry) SetSoftbreaks(positions []int64) {
	tree := augtree.New[node, summary](leaf, summary{})
	var prev int64
	nodes := make([]node, 0, len(positions))
	for _, p := range positions {
		nodes = append(nodes, node{Length: p - prev})
		prev = p
	}
	tree.InsertSliceAt(0, nodes)
	r.tree = tree
}

type charSelector struct {
	target int64
	base   int64
}

func (s *charSelector) Visit(n node, left summary) augtree.Direction {
	if s.target < left.Chars || (s.target == left.Chars && left.Chars > 0) {
		return augtree.Left
	}
	s.base = left.Chars
	if s.target <= left.Chars+n.Length {
		return augtree.Hit
	}
	return augtree.Right
}

// GetSoftbreakBeforeOrAt locates the run of characters c falls in.
// Run i ends at soft break i and covers the characters after break
// i-1 up to and including break i's position, so a c exactly at a
// break belongs to the run that ends there. It returns the run's
// index, the character offset where the run starts, and the number of
// soft breaks before it; for c past the last break it reports the
// last run.
func (r *Registry) GetSoftbreakBeforeOrAt(c int64) (breakIdx int, prevChars int64, prevBreaks int64) {
	if r.tree.Len() == 0 || c < 0 {
		return -1, 0, 0
	}
	sel := &charSelector{target: c}
	it := r.tree.Find(sel)
	if !it.Valid() {
		return r.tree.Len() - 1, r.tree.Summary().Chars - r.tree.ValueAt(r.tree.Len()-1).Length, int64(r.tree.Len() - 1)
	}
	idx := it.Index()
	return idx, sel.base, int64(idx)
}

// GetVisualLineOfChar returns hardLineOf(c) + softBreaksBefore(c),
// where a c exactly at a soft break counts on the visual line that
// break ends.
func (r *Registry) GetVisualLineOfChar(c int64, hardLine int) int64 {
	if c > r.tree.Summary().Chars {
		return int64(hardLine) + r.TotalSoftBreaks()
	}
	_, _, prevBreaks := r.GetSoftbreakBeforeOrAt(c)
	return int64(hardLine) + prevBreaks
}

// breakPositions returns every soft break's cumulative character
// position, in order.
func (r *Registry) breakPositions() []int64 {
	out := make([]int64, r.tree.Len())
	var acc int64
	for i := 0; i < r.tree.Len(); i++ {
		acc += r.tree.ValueAt(i).Length
		out[i] = acc
	}
	return out
}

// GetBeginningCharOfVisualLine returns the first character of visual
// line vline and whether that boundary is a soft break (false means
// hard), combining with the hard line registry l (spec.md 4.7: "at
// line `line`, the boundary is whichever of (hard-break-index,
// soft-break-index) is closer").
func (r *Registry) GetBeginningCharOfVisualLine(l *lines.Registry, vline int64) (char int64, soft bool) {
	if vline <= 0 {
		return 0, false
	}
	breaks := r.breakPositions()
	hi, si := 0, 0
	var vl int64
	var lastChar int64
	var lastSoft bool
	for hi < l.LineCount() || si < len(breaks) {
		hardChar, hasHard := int64(-1), false
		if hi < l.LineCount() {
			hardChar, hasHard = l.CharOffsetOfLine(hi), true
		}
		softChar, hasSoft := int64(-1), false
		if si < len(breaks) {
			softChar, hasSoft = breaks[si], true
		}
		var nextChar int64
		var nextSoft bool
		switch {
		case hasHard && (!hasSoft || hardChar <= softChar):
			nextChar, nextSoft = hardChar, false
			hi++
			if hasSoft && softChar == hardChar {
				si++
			}
		default:
			nextChar, nextSoft = softChar, true
			si++
		}
		if nextChar == 0 {
			continue // document start is visual line 0, not a boundary to count
		}
		vl++
		lastChar, lastSoft = nextChar, nextSoft
		if vl == vline {
			return lastChar, lastSoft
		}
	}
	return l.TotalCharacters(), false
}

// GetPastEndingCharOfVisualLine returns the exclusive end character of
// visual line vline.
func (r *Registry) GetPastEndingCharOfVisualLine(l *lines.Registry, vline int64) int64 {
	begin, _ := r.GetBeginningCharOfVisualLine(l, vline+1)
	return begin
}
