package interp

import (
	"testing"

	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

func TestByteCodepointRoundTrip(t *testing.T) {
	buf := textbuf.NewFromBytes([]byte("héllo\r\nworld"))
	in, err := New(buf, "UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	for b := int64(0); b < buf.Length(); b++ {
		cp, start := in.ByteToCodepoint(b)
		back := in.CodepointToByte(cp)
		if back > b {
			t.Fatalf("codepoint_to_byte(byte_to_codepoint(%d)) = %d, want <= %d", b, back, b)
		}
		if start == b && back != b {
			t.Fatalf("byte %d is a codepoint start but round trip gave %d", b, back)
		}
	}
}

func TestInterpFixupAfterInsert(t *testing.T) {
	buf := textbuf.NewFromBytes([]byte("abcde"))
	in, err := New(buf, "UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	cp1 := in.CodepointToByte(1)
	cp4 := in.CodepointToByte(4)
	buf.Modify(0, []textbuf.Modification{
		{Pos: cp1, Insert: []byte("X")},
		{Pos: cp4 + 1, Insert: []byte("X")},
	})
	if got := string(buf.Bytes()); got != "aXbcdXe" {
		t.Fatalf("buffer = %q, want aXbcdXe", got)
	}
	if got := in.TotalCodepoints(); got != 7 {
		t.Errorf("TotalCodepoints = %d, want 7", got)
	}
	if got := in.lineReg.TotalCharacters(); got != 7 {
		t.Errorf("TotalCharacters = %d, want 7", got)
	}
}

func TestScenarioFiveUTF16CRLF(t *testing.T) {
	buf := textbuf.NewFromBytes([]byte("H\x00i\x00\r\x00\n\x00"))
	in, err := New(buf, "UTF-16LE")
	if err != nil {
		t.Fatal(err)
	}
	if got := in.TotalCharacters(); got != 3 {
		t.Fatalf("TotalCharacters = %d, want 3", got)
	}
	if got := in.lineReg.LineAt(0); got.NonbreakChars != 2 {
		t.Errorf("line 0 nonbreak = %d, want 2", got.NonbreakChars)
	}
	buf.Modify(0, []textbuf.Modification{{Pos: 4, EraseLen: 2}})
	if got := in.lineReg.LineAt(0); got.NonbreakChars != 3 {
		t.Errorf("after erase line 0 nonbreak = %d, want 3", got.NonbreakChars)
	}
}
