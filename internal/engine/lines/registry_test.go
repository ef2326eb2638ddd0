package lines

import "testing"

func cps(s string) []rune { return []rune(s) }

func TestScenarioOneLineRecords(t *testing.T) {
	r := FromCodepoints(cps("a\r\nb\n"))
	if r.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", r.LineCount())
	}
	want := []Record{{1, CRLF}, {1, LF}, {0, None}}
	for i, w := range want {
		got := r.LineAt(i)
		if got != w {
			t.Errorf("line %d = %+v, want %+v", i, got, w)
		}
	}
	if got := r.TotalCharacters(); got != 4 {
		t.Errorf("TotalCharacters = %d, want 4", got)
	}
	if got := r.CharacterToCodepoint(3); got != 4 {
		t.Errorf("CharacterToCodepoint(3) = %d, want 4", got)
	}
}

func TestInsertFusesCRIntoCRLF(t *testing.T) {
	// "ab\n" -> insert "\r" before the "\n" fuses it into CRLF.
	r := FromCodepoints(cps("ab\n"))
	r.InsertCodepoints(2, cps("\r"))
	if got := r.LineCount(); got != 2 {
		t.Fatalf("LineCount = %d, want 2", got)
	}
	if got := r.LineAt(0); got != (Record{2, CRLF}) {
		t.Errorf("line 0 = %+v, want {2 CRLF}", got)
	}
}

func TestEraseSplitsCRLF(t *testing.T) {
	// "a\r\nb" erase the LF codepoint (index 2) splits CRLF into CR.
	r := FromCodepoints(cps("a\r\nb"))
	r.EraseCodepoints(2, 3)
	if got := r.LineAt(0); got != (Record{1, CR}) {
		t.Errorf("line 0 = %+v, want {1 CR}", got)
	}
	if got := r.LineAt(1); got != (Record{1, None}) {
		t.Errorf("line 1 = %+v, want {1 None}", got)
	}
}

func TestInsertAtDocumentBoundaries(t *testing.T) {
	r := New()
	r.InsertCodepoints(0, cps("hi"))
	if got := r.LineAt(0); got != (Record{2, None}) {
		t.Errorf("line 0 = %+v, want {2 None}", got)
	}
	r.InsertCodepoints(r.TotalCodepoints(), cps("!"))
	if got := r.LineAt(0); got != (Record{3, None}) {
		t.Errorf("line 0 = %+v, want {3 None}", got)
	}
}

func TestHelloWorldScenarioFour(t *testing.T) {
	r := FromCodepoints(cps("hello\r\nworld"))
	r.InsertCodepoints(5, cps("!"))
	if got := r.LineAt(0); got != (Record{6, CRLF}) {
		t.Errorf("line 0 = %+v, want {6 CRLF}", got)
	}
	if got := r.LineAt(1); got != (Record{5, None}) {
		t.Errorf("line 1 = %+v, want {5 None}", got)
	}
	r.InsertCodepoints(5, cps("\n"))
	want := []Record{{5, LF}, {1, CRLF}, {5, None}}
	if r.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", r.LineCount())
	}
	for i, w := range want {
		if got := r.LineAt(i); got != w {
			t.Errorf("line %d = %+v, want %+v", i, got, w)
		}
	}
}
