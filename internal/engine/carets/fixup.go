package carets

import "github.com/dshills/keystorm-core/internal/engine/fixup"

// Fixup patches every caret's byte positions through journal with the
// back policy, then recomputes character positions via byteToChar
// (spec.md 4.6).
func (s *Set) Fixup(journal []fixup.Entry, byteToChar func(bytePos int64) int64) {
	p := fixup.Patcher{Journal: journal, Policy: fixup.Back}
	for i := range s.entries {
		e := &s.entries[i]
		newFirst := p.Patch(e.BytePosFirst)
		newSecond := p.Patch(e.BytePosSecond)
		e.BytePosFirst, e.BytePosSecond = newFirst, newSecond

		firstCh := byteToChar(newFirst)
		secondCh := byteToChar(newSecond)
		if e.Caret == e.Max() {
			e.Caret, e.Anchor = secondCh, firstCh
		} else {
			e.Caret, e.Anchor = firstCh, secondCh
		}
	}
	s.normalize()
	s.bytesValid = true
}

// normalize re-merges any carets a fixup pushed into overlap.
func (s *Set) normalize() {
	entries := s.entries
	s.entries = nil
	for _, e := range entries {
		s.Add(e)
	}
}
