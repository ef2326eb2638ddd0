package theme

import (
	"testing"

	"github.com/dshills/keystorm-core/internal/engine/fixup"
)

func TestGetAtDefaultsEmpty(t *testing.T) {
	m := New()
	if got := m.GetAt(50); got != "" {
		t.Fatalf("GetAt on empty map = %q, want empty", got)
	}
}

func TestSetRangeBasic(t *testing.T) {
	m := New()
	m.SetRange(10, 20, "bold")
	if got := m.GetAt(5); got != "" {
		t.Fatalf("GetAt(5) = %q, want empty", got)
	}
	if got := m.GetAt(10); got != "bold" {
		t.Fatalf("GetAt(10) = %q, want bold", got)
	}
	if got := m.GetAt(19); got != "bold" {
		t.Fatalf("GetAt(19) = %q, want bold", got)
	}
	if got := m.GetAt(20); got != "" {
		t.Fatalf("GetAt(20) = %q, want empty (range is half-open)", got)
	}
}

func TestSetRangeOverlapAbsorbsPredecessor(t *testing.T) {
	m := New()
	m.SetRange(10, 30, "bold")
	m.SetRange(15, 20, "italic")
	if got := m.GetAt(12); got != "bold" {
		t.Fatalf("GetAt(12) = %q, want bold", got)
	}
	if got := m.GetAt(17); got != "italic" {
		t.Fatalf("GetAt(17) = %q, want italic", got)
	}
	if got := m.GetAt(20); got != "bold" {
		t.Fatalf("GetAt(20) = %q, want bold (resumes after the override)", got)
	}
	if got := m.GetAt(29); got != "bold" {
		t.Fatalf("GetAt(29) = %q, want bold", got)
	}
	if got := m.GetAt(30); got != "" {
		t.Fatalf("GetAt(30) = %q, want empty", got)
	}
}

func TestSetRangeSameValueNoOp(t *testing.T) {
	m := New()
	m.SetRange(10, 20, "bold")
	m.SetRange(10, 20, "bold")
	if got := m.GetAt(10); got != "bold" {
		t.Fatalf("GetAt(10) = %q, want bold", got)
	}
	if got := m.GetAt(20); got != "" {
		t.Fatalf("GetAt(20) = %q, want empty", got)
	}
}

func TestWalkEmitsBoundariesFromBothMaps(t *testing.T) {
	style := New()
	color := New()
	style.SetRange(10, 30, "bold")
	color.SetRange(20, 40, "red")

	w := Walk(style, color)
	type step struct {
		pos         int64
		style, clr  string
	}
	var got []step
	got = append(got, step{w.Pos(), w.Style(), w.Color()})
	for w.Next() {
		got = append(got, step{w.Pos(), w.Style(), w.Color()})
	}

	want := []step{
		{0, "", ""},
		{10, "bold", ""},
		{20, "bold", "red"},
		{30, "", "red"},
		{40, "", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFixupPatchesBoundaries(t *testing.T) {
	m := New()
	m.SetRange(10, 20, "bold")
	journal := []fixup.Entry{{Pos: 5, Removed: 0, Added: 3}}
	m.Fixup(journal)
	if got := m.GetAt(13); got != "bold" {
		t.Fatalf("GetAt(13) after fixup = %q, want bold", got)
	}
	if got := m.GetAt(23); got != "" {
		t.Fatalf("GetAt(23) after fixup = %q, want empty", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	style := New()
	color := New()
	style.SetRange(10, 30, "bold")
	color.SetRange(20, 40, "red")

	data, err := Snapshot(style, color)
	if err != nil {
		t.Fatal(err)
	}
	gotStyle, gotColor, err := Restore(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []int64{0, 10, 15, 20, 25, 30, 35, 40, 50} {
		if gotStyle.GetAt(p) != style.GetAt(p) {
			t.Fatalf("style at %d = %q, want %q", p, gotStyle.GetAt(p), style.GetAt(p))
		}
		if gotColor.GetAt(p) != color.GetAt(p) {
			t.Fatalf("color at %d = %q, want %q", p, gotColor.GetAt(p), color.GetAt(p))
		}
	}
}
