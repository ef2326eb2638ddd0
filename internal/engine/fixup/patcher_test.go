package fixup

import "testing"

func TestPatchPastInsertion(t *testing.T) {
	journal := []Entry{{Pos: 2, Removed: 0, Added: 3}}
	if got := Patch(journal, 5, Back); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestPatchBeforeEdit(t *testing.T) {
	journal := []Entry{{Pos: 10, Removed: 2, Added: 1}}
	if got := Patch(journal, 3, Back); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestPatchInsideRemovedFront(t *testing.T) {
	journal := []Entry{{Pos: 5, Removed: 4, Added: 1}}
	if got := Patch(journal, 7, Front); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestPatchInsideRemovedBack(t *testing.T) {
	journal := []Entry{{Pos: 5, Removed: 4, Added: 1}}
	if got := Patch(journal, 7, Back); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestPatchInsideRemovedTryKeep(t *testing.T) {
	journal := []Entry{{Pos: 5, Removed: 4, Added: 2}}
	// offset 1 into removed span fits inside the 2-long replacement: kept.
	if got := Patch(journal, 6, TryKeep); got != 6 {
		t.Fatalf("got %d, want 6 (kept within replacement)", got)
	}
	// offset 3 into removed span exceeds the 2-byte replacement: clamp to end.
	if got := Patch(journal, 8, TryKeep); got != 7 {
		t.Fatalf("got %d, want 7 (clamped to end of replacement)", got)
	}
}

func TestPatchMultipleEntries(t *testing.T) {
	journal := []Entry{
		{Pos: 1, Removed: 0, Added: 1},
		{Pos: 5, Removed: 0, Added: 1},
	}
	// p=4 moves past entry 1 (4 >= 1+1) to 5, then lands exactly at
	// entry 2's insertion point (5 >= 5), which under Back also
	// advances past it, to 6.
	if got := Patch(journal, 4, Back); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
	if got := Patch(journal, 6, Back); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestPatchAtPureInsertionPoint(t *testing.T) {
	// A caret typing at its own position (no selection) sits exactly
	// at a pure insertion's Pos; Back must advance it past the
	// inserted text rather than leaving it untouched.
	journal := []Entry{{Pos: 1, Removed: 0, Added: 1}}
	if got := Patch(journal, 1, Back); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := Patch(journal, 1, Front); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
