package lines

import "github.com/dshills/keystorm-core/internal/engine/augtree"

// codepointSelector locates the line containing a target codepoint
// offset; base is left as the codepoint offset of the hit line's
// start.
type codepointSelector struct {
	target int64
	base   int64
}

func (s *codepointSelector) Visit(r Record, left Summary) augtree.Direction {
	if s.target < left.Codepoints {
		return augtree.Left
	}
	s.base = left.Codepoints
	if s.target < left.Codepoints+r.Codepoints() {
		return augtree.Hit
	}
	return augtree.Right
}

// characterSelector is the same descent keyed on the character
// summary.
type characterSelector struct {
	target int64
	base   int64
}

func (s *characterSelector) Visit(r Record, left Summary) augtree.Direction {
	if s.target < left.Characters {
		return augtree.Left
	}
	s.base = left.Characters
	if s.target < left.Characters+r.Characters() {
		return augtree.Hit
	}
	return augtree.Right
}
