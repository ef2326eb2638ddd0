package edit

import (
	"testing"

	"github.com/dshills/keystorm-core/internal/engine/carets"
	"github.com/dshills/keystorm-core/internal/engine/interp"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

func TestScenarioTwoAndThree(t *testing.T) {
	buf := textbuf.NewFromBytes([]byte("abcde"))
	in, err := interp.New(buf, "UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	set := carets.NewFromEntries([]carets.Entry{
		{Caret: 1, Anchor: 1},
		{Caret: 4, Anchor: 4},
	})
	p := New(in, set)

	p.Insert(1, []byte("X"))
	if got := string(buf.Bytes()); got != "aXbcdXe" {
		t.Fatalf("buffer = %q, want aXbcdXe", got)
	}
	entries := set.All()
	if len(entries) != 2 || entries[0].Caret != 2 || entries[1].Caret != 6 {
		t.Fatalf("carets = %+v, want [2 6]", entries)
	}
	if !buf.CanUndo() {
		t.Fatal("CanUndo should be true")
	}

	if _, err := p.Undo(1); err != nil {
		t.Fatal(err)
	}
	if got := string(buf.Bytes()); got != "abcde" {
		t.Fatalf("buffer after undo = %q, want abcde", got)
	}
	entries = set.All()
	if len(entries) != 2 || entries[0].Caret != 1 || entries[1].Caret != 4 {
		t.Fatalf("carets after undo = %+v, want [1 4]", entries)
	}
	if !buf.CanRedo() {
		t.Fatal("CanRedo should be true")
	}
}
