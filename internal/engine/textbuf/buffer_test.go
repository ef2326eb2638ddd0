package textbuf

import (
	"bytes"
	"testing"
)

func TestNewFromBytesAndClip(t *testing.T) {
	b := NewFromBytes([]byte("hello world"))
	if b.Length() != 11 {
		t.Fatalf("length = %d, want 11", b.Length())
	}
	if got := string(b.GetClip(6, 11)); got != "world" {
		t.Fatalf("clip = %q, want %q", got, "world")
	}
	if got := string(b.Bytes()); got != "hello world" {
		t.Fatalf("bytes = %q", got)
	}
}

func TestModifyInsertTwoCarets(t *testing.T) {
	// spec.md 8 scenario (2): "abcde", insert "X" at char positions 1 and 4.
	b := NewFromBytes([]byte("abcde"))
	ops := []Modification{
		{Pos: 1, EraseLen: 0, Insert: []byte("X")},
		{Pos: 5, EraseLen: 0, Insert: []byte("X")},
	}
	b.Modify(1, ops)
	if got := string(b.Bytes()); got != "aXbcdXe" {
		t.Fatalf("got %q, want %q", got, "aXbcdXe")
	}
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo true")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo false")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := NewFromBytes([]byte("abcde"))
	ops := []Modification{
		{Pos: 1, EraseLen: 0, Insert: []byte("X")},
		{Pos: 5, EraseLen: 0, Insert: []byte("X")},
	}
	b.Modify(1, ops)

	if _, err := b.Undo(1); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := string(b.Bytes()); got != "abcde" {
		t.Fatalf("after undo got %q, want %q", got, "abcde")
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo true after undo")
	}

	if _, err := b.Redo(1); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if got := string(b.Bytes()); got != "aXbcdXe" {
		t.Fatalf("after redo got %q, want %q", got, "aXbcdXe")
	}

	if _, err := b.Undo(1); err != nil {
		t.Fatalf("undo 2: %v", err)
	}
	if _, err := b.Undo(1); err == nil {
		t.Fatalf("expected ErrNothingToUndo")
	}
}

func TestEraseAcrossChunkBoundary(t *testing.T) {
	data := bytes.Repeat([]byte("a"), MaxChunkBytes+10)
	b := NewFromBytes(data)
	b.Modify(1, []Modification{{Pos: int64(MaxChunkBytes) - 5, EraseLen: 10, Insert: []byte("BB")}})
	if b.Length() != int64(len(data))-10+2 {
		t.Fatalf("length = %d, want %d", b.Length(), len(data)-10+2)
	}
	clip := b.GetClip(int64(MaxChunkBytes)-7, int64(MaxChunkBytes)-2)
	if string(clip) != "aaBBa" {
		t.Fatalf("clip = %q, want %q", clip, "aaBBa")
	}
}

func TestEndEditJournal(t *testing.T) {
	b := NewFromBytes([]byte("abcde"))
	var journal []fixupEntryPos
	b.SubscribeEndEdit(func(e EditEvent) {
		for _, j := range e.Journal {
			journal = append(journal, fixupEntryPos{pos: j.Pos, removed: j.Removed, added: j.Added})
		}
	})
	b.Modify(1, []Modification{{Pos: 2, EraseLen: 1, Insert: []byte("XY")}})
	if len(journal) != 1 {
		t.Fatalf("journal len = %d, want 1", len(journal))
	}
	if journal[0].pos != 2 || journal[0].removed != 1 || journal[0].added != 2 {
		t.Fatalf("journal entry = %+v", journal[0])
	}
}

type fixupEntryPos struct {
	pos, removed, added int64
}
