package interp

import (
	"github.com/dshills/keystorm-core/internal/engine/augtree"
	"github.com/dshills/keystorm-core/internal/engine/encoding"
)

// MaxCodepointsPerChunk bounds a chunk-index entry's codepoint count
// (spec.md 3.1's MAX_CODEPOINTS_PER_CHUNK, default 1000).
const MaxCodepointsPerChunk = 1000

// chunkEntry is one contiguous byte run's (bytes, codepoints) pair
// (spec.md 3.1).
type chunkEntry struct {
	Bytes      int64
	Codepoints int64
}

type chunkSummary struct {
	Bytes      int64
	Codepoints int64
}

func (s chunkSummary) Combine(o chunkSummary) chunkSummary {
	return chunkSummary{Bytes: s.Bytes + o.Bytes, Codepoints: s.Codepoints + o.Codepoints}
}

func chunkLeaf(e chunkEntry) chunkSummary {
	return chunkSummary{Bytes: e.Bytes, Codepoints: e.Codepoints}
}

// decodeEntries decodes data with codec into chunk-index entries of
// at most MaxCodepointsPerChunk codepoints each, never splitting a
// codepoint across an entry boundary.
func decodeEntries(codec encoding.Codec, data []byte) []chunkEntry {
	var out []chunkEntry
	var curBytes, curCP int64
	i := 0
	for i < len(data) {
		_, size := codec.NextCodepoint(data[i:])
		if size <= 0 {
			size = 1
		}
		i += size
		curBytes += int64(size)
		curCP++
		if curCP == MaxCodepointsPerChunk {
			out = append(out, chunkEntry{Bytes: curBytes, Codepoints: curCP})
			curBytes, curCP = 0, 0
		}
	}
	if curBytes > 0 || curCP > 0 {
		out = append(out, chunkEntry{Bytes: curBytes, Codepoints: curCP})
	}
	return out
}

// countCodepoints decodes data with codec and returns its codepoint
// count, without retaining chunk structure.
func countCodepoints(codec encoding.Codec, data []byte) int64 {
	var n int64
	i := 0
	for i < len(data) {
		_, size := codec.NextCodepoint(data[i:])
		if size <= 0 {
			size = 1
		}
		i += size
		n++
	}
	return n
}

// decodeCodepoints decodes data with codec into the codepoints
// themselves.
func decodeCodepoints(codec encoding.Codec, data []byte) []rune {
	var out []rune
	i := 0
	for i < len(data) {
		r, size := codec.NextCodepoint(data[i:])
		if size <= 0 {
			size = 1
		}
		i += size
		out = append(out, r)
	}
	return out
}

type byteSelector struct {
	target int64
	base   chunkSummary
}

func (s *byteSelector) Visit(e chunkEntry, left chunkSummary) augtree.Direction {
	if s.target < left.Bytes {
		return augtree.Left
	}
	s.base = left
	if s.target < left.Bytes+e.Bytes {
		return augtree.Hit
	}
	return augtree.Right
}

// chunkIndex wraps the augtree instance and the split/splice
// operations the fixup algorithm needs.
type chunkIndex struct {
	tree *augtree.Tree[chunkEntry, chunkSummary]
}

func newChunkIndex() *chunkIndex {
	return &chunkIndex{tree: augtree.New[chunkEntry, chunkSummary](chunkLeaf, chunkSummary{})}
}

func (c *chunkIndex) totalBytes() int64      { return c.tree.Summary().Bytes }
func (c *chunkIndex) totalCodepoints() int64 { return c.tree.Summary().Codepoints }

// splitAt ensures an entry boundary exists at byte offset pos,
// re-decoding the one straddling entry's bytes (bounded by
// MaxCodepointsPerChunk) to find the codepoint-aligned split point.
// Returns the entry index starting at pos.
func (c *chunkIndex) splitAt(codec encoding.Codec, pos int64, fetch func(start, end int64) []byte) int {
	total := c.totalBytes()
	if pos <= 0 {
		return 0
	}
	if pos >= total {
		return c.tree.Len()
	}
	sel := &byteSelector{target: pos}
	it := c.tree.Find(sel)
	idx := it.Index()
	entry := it.Value()
	offset := pos - sel.base.Bytes
	if offset == 0 {
		return idx
	}
	data := fetch(sel.base.Bytes, sel.base.Bytes+entry.Bytes)
	left := chunkEntry{Bytes: offset, Codepoints: countCodepoints(codec, data[:offset])}
	right := chunkEntry{Bytes: entry.Bytes - offset, Codepoints: entry.Codepoints - left.Codepoints}
	c.tree.EraseAt(idx)
	c.tree.InsertSliceAt(idx, []chunkEntry{left, right})
	return idx + 1
}
