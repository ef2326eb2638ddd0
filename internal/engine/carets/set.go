package carets

import (
	"errors"
	"sort"
)

var ErrNoPrimary = errors.New("carets: set is empty")

// Set is spec.md's caret set.
type Set struct {
	entries    []Entry
	bytesValid bool
}

// New creates a set with a single caret at character position 0.
func New() *Set {
	return &Set{entries: []Entry{{}}}
}

// NewFromEntries builds a set from entries, merging overlaps per the
// merge predicate (spec.md 4.5).
func NewFromEntries(entries []Entry) *Set {
	s := &Set{}
	for _, e := range entries {
		s.Add(e)
	}
	if len(s.entries) == 0 {
		s.entries = []Entry{{}}
	}
	return s
}

// Count returns the number of carets.
func (s *Set) Count() int { return len(s.entries) }

// All returns a copy of every entry, ordered by pair.
func (s *Set) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Primary returns the first (primary) caret.
func (s *Set) Primary() (Entry, error) {
	if len(s.entries) == 0 {
		return Entry{}, ErrNoPrimary
	}
	return s.entries[0], nil
}

// BytePositionsValid reports whether the byte caches are current.
func (s *Set) BytePositionsValid() bool { return s.bytesValid }

// Invalidate marks the byte caches stale; any edit must call this.
func (s *Set) Invalidate() { s.bytesValid = false }

// CalculateBytePositions fills BytePosFirst/BytePosSecond (smaller
// offset first) for every entry using charToByte, and marks the cache
// valid (spec.md 4.5).
func (s *Set) CalculateBytePositions(charToByte func(ch int64) int64) {
	for i := range s.entries {
		e := &s.entries[i]
		lo, hi := e.Min(), e.Max()
		e.BytePosFirst = charToByte(lo)
		e.BytePosSecond = charToByte(hi)
	}
	s.bytesValid = true
}

// mergePredicate implements spec.md 4.5's symmetric merge predicate
// between "master" m and "slave" sl, returning the merged entry and
// whether they overlap at all.
func mergePredicate(m, sl Entry) (Entry, bool) {
	mMin, mMax := m.Min(), m.Max()
	sMin, sMax := sl.Min(), sl.Max()

	if m.IsEmpty() && m.Caret >= sMin && m.Caret <= sMax {
		return sl, true
	}
	if sl.IsEmpty() && sl.Caret >= mMin && sl.Caret <= mMax {
		return m, true
	}
	if mMax < sMin || sMax < mMin {
		return Entry{}, false
	}

	gMin, gMax := mMin, mMax
	if sMin < gMin {
		gMin = sMin
	}
	if sMax > gMax {
		gMax = sMax
	}

	merged := m
	if m.Caret == mMax {
		merged.Caret, merged.Anchor = gMax, gMin
	} else {
		merged.Caret, merged.Anchor = gMin, gMax
	}
	return merged, true
}

// Add inserts entry, merging every existing caret it overlaps (spec.md
// 4.5: "scans from the first existing caret whose min is ≤ new-min −
// 1 forward, merging each overlap into the new entry and erasing it,
// then inserts the result").
func (s *Set) Add(entry Entry) {
	merged := entry
	var kept []Entry
	for _, existing := range s.entries {
		if m, ok := mergePredicate(merged, existing); ok {
			merged = m
			continue
		}
		kept = append(kept, existing)
	}
	kept = append(kept, merged)
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Min() != kept[j].Min() {
			return kept[i].Min() < kept[j].Min()
		}
		return kept[i].Max() < kept[j].Max()
	})
	s.entries = kept
	s.bytesValid = false
}

// SetAll replaces every caret, merging overlaps.
func (s *Set) SetAll(entries []Entry) {
	s.entries = nil
	for _, e := range entries {
		s.Add(e)
	}
	if len(s.entries) == 0 {
		s.entries = []Entry{{}}
	}
}
