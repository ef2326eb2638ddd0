package carets

import "testing"

func TestAddMergesOverlap(t *testing.T) {
	s := &Set{}
	s.Add(Entry{Caret: 5, Anchor: 10})
	s.Add(Entry{Caret: 8, Anchor: 20})
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	e := s.entries[0]
	if e.Min() != 5 || e.Max() != 20 {
		t.Errorf("merged = %+v, want min 5 max 20", e)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s := &Set{}
	s.Add(Entry{Caret: 3, Anchor: 3})
	s.Add(Entry{Caret: 3, Anchor: 3})
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
}

func TestAddDisjointKeepsBoth(t *testing.T) {
	s := &Set{}
	s.Add(Entry{Caret: 1, Anchor: 1})
	s.Add(Entry{Caret: 10, Anchor: 10})
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
}

func TestPointInsideRangeMerges(t *testing.T) {
	s := &Set{}
	s.Add(Entry{Caret: 5, Anchor: 20})
	s.Add(Entry{Caret: 10, Anchor: 10})
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if e := s.entries[0]; e.Min() != 5 || e.Max() != 20 {
		t.Errorf("merged = %+v, want min 5 max 20", e)
	}
}
