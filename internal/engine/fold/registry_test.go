package fold

import (
	"testing"

	"github.com/dshills/keystorm-core/internal/engine/fixup"
)

// TestFoldScenarioSix reproduces spec.md 8's scenario (6): a 100
// character document, folds at [10,20) and [30,50), then an insertion
// of 5 characters at character 15 (inside the first fold).
func TestFoldScenarioSix(t *testing.T) {
	r := New(100)
	r.AddFold(10, 20)
	r.AddFold(30, 50)
	if got := r.TotalFolds(); got != 2 {
		t.Fatalf("TotalFolds = %d, want 2", got)
	}

	journal := []fixup.Entry{{Pos: 15, Removed: 0, Added: 5}}
	r.Fixup(journal, 105)

	spans := r.Folds()
	if len(spans) != 2 {
		t.Fatalf("spans = %+v, want 2 folds", spans)
	}
	if spans[0] != (FoldSpan{10, 25}) {
		t.Fatalf("first fold = %+v, want [10,25)", spans[0])
	}
	if spans[1] != (FoldSpan{35, 55}) {
		t.Fatalf("second fold = %+v, want [35,55)", spans[1])
	}

	if got := r.FoldedToUnfoldedChar(10); got != 10 {
		t.Fatalf("FoldedToUnfoldedChar(10) = %d, want 10", got)
	}
	if got := r.FoldedToUnfoldedChar(11); got != 26 {
		t.Fatalf("FoldedToUnfoldedChar(11) = %d, want 26", got)
	}
}

func TestUnfoldedToFoldedClampsInsideFold(t *testing.T) {
	r := New(100)
	r.AddFold(10, 20)
	r.AddFold(30, 50)

	if got := r.UnfoldedToFoldedChar(5); got != 5 {
		t.Fatalf("UnfoldedToFoldedChar(5) = %d, want 5", got)
	}
	if got := r.UnfoldedToFoldedChar(15); got != 10 {
		t.Fatalf("UnfoldedToFoldedChar(15) = %d, want 10 (clamped to fold start)", got)
	}
	if got := r.UnfoldedToFoldedChar(25); got != 15 {
		t.Fatalf("UnfoldedToFoldedChar(25) = %d, want 15", got)
	}
	if got := r.UnfoldedToFoldedChar(40); got != 20 {
		t.Fatalf("UnfoldedToFoldedChar(40) = %d, want 20 (clamped to second fold start)", got)
	}
}

func TestAddFoldRemovesOverlap(t *testing.T) {
	r := New(100)
	r.AddFold(10, 20)
	r.AddFold(15, 30)
	if got := r.TotalFolds(); got != 1 {
		t.Fatalf("TotalFolds = %d, want 1 after overlap", got)
	}
	if got := r.Folds()[0]; got != (FoldSpan{15, 30}) {
		t.Fatalf("fold = %+v, want [15,30) (the overlapping [10,20) fold is dropped, not merged)", got)
	}
}

func TestRemoveFoldAt(t *testing.T) {
	r := New(100)
	r.AddFold(10, 20)
	r.AddFold(30, 50)
	if !r.RemoveFoldAt(0) {
		t.Fatal("RemoveFoldAt(0) should succeed")
	}
	if got := r.TotalFolds(); got != 1 {
		t.Fatalf("TotalFolds = %d, want 1", got)
	}
	if got := r.Folds()[0]; got != (FoldSpan{30, 50}) {
		t.Fatalf("remaining fold = %+v, want [30,50)", got)
	}
}

func TestFixupRemovesFullyDeletedFold(t *testing.T) {
	r := New(100)
	r.AddFold(10, 20)
	r.AddFold(30, 50)

	journal := []fixup.Entry{{Pos: 10, Removed: 10, Added: 0}}
	r.Fixup(journal, 90)

	spans := r.Folds()
	if len(spans) != 1 {
		t.Fatalf("spans = %+v, want 1 fold remaining", spans)
	}
	if spans[0] != (FoldSpan{20, 40}) {
		t.Fatalf("surviving fold = %+v, want [20,40)", spans[0])
	}
}
