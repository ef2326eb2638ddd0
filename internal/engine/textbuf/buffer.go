package textbuf

import (
	"io"
	"os"

	"github.com/dshills/keystorm-core/internal/engine/augtree"
)

// Modification is a single (position, erase_len, insert_bytes) triple
// (spec.md 3.1). Pos is given in post-earlier-modifications
// coordinates of the edit it belongs to.
type Modification struct {
	Pos       int64
	EraseLen  int64
	Insert    []byte
}

// appliedMod records what a Modification actually removed, so the
// edit can be inverted for undo without re-deriving it from the tree.
type appliedMod struct {
	Pos     int64
	Erased  []byte
	Insert  []byte
}

// Edit is a recorded undo unit: the ordered list of modifications
// applied atomically by one Modify call (spec.md 3.1, "Edit").
type Edit struct {
	Type Type
	Mods []appliedMod
}

// Type is an alias kept for readability at call sites; see EditType.
type Type = EditType

// Buffer is spec.md's byte buffer: an ordered sequence of bytes
// stored as a tree of chunks, with undo/redo history and an edit
// event stream. The core is single-threaded cooperative (spec.md 5):
// Buffer carries no mutex.
type Buffer struct {
	tree       *augtree.Tree[Chunk, ByteSummary]
	history    []Edit
	editCursor int
	maxHistory int
	events     Events
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tree:       augtree.New[Chunk, ByteSummary](chunkSummary, ByteSummary{}),
		maxHistory: DefaultMaxHistory,
		events:     newEvents(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromBytes creates a buffer already populated with data.
func NewFromBytes(data []byte, opts ...Option) *Buffer {
	b := New(opts...)
	if len(data) > 0 {
		b.tree.InsertSliceAt(0, splitIntoChunks(data))
	}
	return b
}

// ReadFromFile streams path into chunks of MaxChunkBytes (spec.md
// 4.2's read_from_file). IO errors are returned, never fatal, per
// spec.md 7.
func ReadFromFile(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFrom(f, opts...)
}

// ReadFrom streams r into chunks of MaxChunkBytes.
func ReadFrom(r io.Reader, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	buf := make([]byte, MaxChunkBytes)
	var chunks []Chunk
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			piece := append([]byte(nil), buf[:n]...)
			chunks = append(chunks, Chunk{data: piece})
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(chunks) > 0 {
		b.tree.InsertSliceAt(0, chunks)
	}
	return b, nil
}

// Length returns the total byte length.
func (b *Buffer) Length() int64 { return b.tree.Summary().Bytes }

// Bytes returns the full document content.
func (b *Buffer) Bytes() []byte {
	return b.GetClip(0, b.Length())
}

// GetClip returns the concatenation of bytes in [begin, end).
func (b *Buffer) GetClip(begin, end int64) []byte {
	if begin < 0 {
		begin = 0
	}
	total := b.Length()
	if end > total {
		end = total
	}
	if begin >= end {
		return nil
	}
	out := make([]byte, 0, end-begin)
	sel := &byteSelector{target: begin}
	it := b.tree.Find(sel)
	chunkStart := sel.base
	startInChunk := begin - chunkStart
	for it.Valid() && chunkStart < end {
		data := it.Value().data
		lo := int64(0)
		if chunkStart == sel.base {
			lo = startInChunk
		}
		hi := int64(len(data))
		if chunkStart+hi > end {
			hi = end - chunkStart
		}
		if lo < hi {
			out = append(out, data[lo:hi]...)
		}
		chunkStart += int64(len(data))
		it = it.Next()
	}
	return out
}

// byteSelector locates the chunk containing a target byte offset,
// the concrete finder spec.md 4.1 calls for: a Selector against the
// ByteSummary property.
type byteSelector struct {
	target int64
	base   int64 // set to the byte offset of the hit chunk's start
}

func (s *byteSelector) Visit(c Chunk, left ByteSummary) augtree.Direction {
	if s.target < left.Bytes {
		return augtree.Left
	}
	s.base = left.Bytes
	if s.target < left.Bytes+int64(c.Len()) {
		return augtree.Hit
	}
	return augtree.Right
}

// ByteAt returns the byte at pos.
func (b *Buffer) ByteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= b.Length() {
		return 0, false
	}
	sel := &byteSelector{target: pos}
	it := b.tree.Find(sel)
	if !it.Valid() {
		return 0, false
	}
	return it.Value().data[pos-sel.base], true
}

// splitBoundary ensures a chunk boundary exists exactly at pos and
// returns the chunk index starting there.
func (b *Buffer) splitBoundary(pos int64) int {
	if pos <= 0 {
		return 0
	}
	total := b.Length()
	if pos >= total {
		return b.tree.Len()
	}
	sel := &byteSelector{target: pos}
	it := b.tree.Find(sel)
	idx := it.Index()
	offset := pos - sel.base
	if offset == 0 {
		return idx
	}
	c := it.Value()
	left, right := c.Split(int(offset))
	b.tree.EraseAt(idx)
	b.tree.InsertSliceAt(idx, []Chunk{left, right})
	return idx + 1
}

// mergeAround considers the chunks at leftIdx and leftIdx+1 for
// merging, per spec.md 4.2: "each adjacent chunk whose length falls
// below half of MAX_CHUNK_BYTES is considered for merging with a
// neighbor if the combined length stays strictly below MAX_CHUNK_BYTES."
func (b *Buffer) mergeAround(leftIdx int) {
	rightIdx := leftIdx + 1
	if leftIdx < 0 || rightIdx >= b.tree.Len() {
		return
	}
	left := b.tree.ValueAt(leftIdx)
	right := b.tree.ValueAt(rightIdx)
	const half = MaxChunkBytes / 2
	if (left.Len() >= half && right.Len() >= half) || left.Len()+right.Len() >= MaxChunkBytes {
		return
	}
	merged := Chunk{data: append(append([]byte(nil), left.data...), right.data...)}
	b.tree.EraseAt(rightIdx)
	b.tree.EraseAt(leftIdx)
	b.tree.InsertAt(leftIdx, merged)
}

// insertBytes is the buffer's low-level _insert primitive.
func (b *Buffer) insertBytes(pos int64, data []byte) {
	if len(data) == 0 {
		return
	}
	idx := b.splitBoundary(pos)
	chunks := splitIntoChunks(data)
	b.tree.InsertSliceAt(idx, chunks)
	b.mergeAround(idx - 1)
	b.mergeAround(idx + len(chunks) - 1)
}

// eraseBytes is the buffer's low-level _erase primitive; returns the
// removed bytes.
func (b *Buffer) eraseBytes(pos, n int64) []byte {
	if n <= 0 {
		return nil
	}
	startIdx := b.splitBoundary(pos)
	endIdx := b.splitBoundary(pos + n)
	removed := b.tree.EraseRange(startIdx, endIdx)
	out := make([]byte, 0, n)
	for _, c := range removed {
		out = append(out, c.data...)
	}
	b.mergeAround(startIdx - 1)
	return out
}
