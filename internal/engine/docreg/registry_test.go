package docreg

import (
	"testing"

	"github.com/dshills/keystorm-core/internal/engine/interp"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

func TestOpenPathDedups(t *testing.T) {
	r := New()
	var created int
	r.OnBufferCreated(func(b *textbuf.Buffer) { created++ })

	loads := 0
	load := func() (*textbuf.Buffer, error) {
		loads++
		return textbuf.NewFromBytes([]byte("hello")), nil
	}

	b1, err := r.OpenPath("/tmp/a.txt", load)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := r.OpenPath("/tmp/a.txt", load)
	if err != nil {
		t.Fatal(err)
	}
	if b1 != b2 {
		t.Fatal("OpenPath should return the same buffer on re-open")
	}
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}
	if created != 1 {
		t.Fatalf("buffer_created fired %d times, want 1", created)
	}
}

func TestNewUnnamedReusesFreedIDs(t *testing.T) {
	r := New()
	_, id0, err := r.NewUnnamed(func(id int) (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	b1, id1, err := r.NewUnnamed(func(id int) (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	if id0 == id1 {
		t.Fatal("distinct unnamed buffers should get distinct ids")
	}
	r.DisposeBuffer(b1)
	_, id2, err := r.NewUnnamed(func(id int) (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id1 {
		t.Fatalf("freed id %d should be reused, got %d", id1, id2)
	}
}

func TestRenameMovesPath(t *testing.T) {
	r := New()
	b, err := r.OpenPath("/tmp/old.txt", func() (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Rename(b, "/tmp/new.txt"); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Lookup("/tmp/old.txt"); ok {
		t.Fatal("old path should no longer resolve")
	}
	got, ok := r.Lookup("/tmp/new.txt")
	if !ok || got != b {
		t.Fatal("new path should resolve to the renamed buffer")
	}
}

func TestRenameConflict(t *testing.T) {
	r := New()
	_, err := r.OpenPath("/tmp/a.txt", func() (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	b2, err := r.OpenPath("/tmp/b.txt", func() (*textbuf.Buffer, error) { return textbuf.NewFromBytes(nil), nil })
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Rename(b2, "/tmp/a.txt"); err != ErrPathConflict {
		t.Fatalf("Rename into a live path = %v, want ErrPathConflict", err)
	}
}

func TestOpenInterpretationDedups(t *testing.T) {
	r := New()
	b, err := r.OpenPath("/tmp/a.txt", func() (*textbuf.Buffer, error) { return textbuf.NewFromBytes([]byte("hi")), nil })
	if err != nil {
		t.Fatal(err)
	}
	builds := 0
	make_ := func() (*interp.Interpretation, error) {
		builds++
		return interp.New(b, "UTF-8")
	}
	i1, err := r.OpenInterpretation(b, "UTF-8", make_)
	if err != nil {
		t.Fatal(err)
	}
	i2, err := r.OpenInterpretation(b, "UTF-8", make_)
	if err != nil {
		t.Fatal(err)
	}
	if i1 != i2 {
		t.Fatal("OpenInterpretation should return the same interpretation")
	}
	if builds != 1 {
		t.Fatalf("builds = %d, want 1", builds)
	}
}

func TestOpenInterpretationUnregisteredBuffer(t *testing.T) {
	r := New()
	b := textbuf.NewFromBytes(nil)
	_, err := r.OpenInterpretation(b, "UTF-8", func() (*interp.Interpretation, error) { return interp.New(b, "UTF-8") })
	if err != ErrBufferNotRegistered {
		t.Fatalf("err = %v, want ErrBufferNotRegistered", err)
	}
}
