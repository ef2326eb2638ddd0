package interp

import (
	"errors"

	"github.com/dshills/keystorm-core/internal/engine/encoding"
	"github.com/dshills/keystorm-core/internal/engine/fixup"
	"github.com/dshills/keystorm-core/internal/engine/lines"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

var ErrInvalidEncoding = errors.New("interp: unknown encoding")

// Option configures an Interpretation at construction.
type Option func(*Interpretation)

// WithTabWidth sets the tab width used by VisualColumnWidth (default 4).
func WithTabWidth(n int) Option {
	return func(i *Interpretation) {
		if n > 0 {
			i.tabWidth = n
		}
	}
}

// Interpretation binds a buffer and an encoding (spec.md 4.3).
type Interpretation struct {
	buf      *textbuf.Buffer
	codec    encoding.Codec
	idx      *chunkIndex
	lineReg  *lines.Registry
	tabWidth int
	token    textbuf.Token

	charJournal []fixup.Entry
}

// New fully decodes buf under codecName, building the chunk index and
// line registry, and subscribes to the buffer's end_modify event to
// keep both in step with future edits.
func New(buf *textbuf.Buffer, codecName string, opts ...Option) (*Interpretation, error) {
	codec := encoding.ByName(codecName)
	if codec == nil {
		return nil, ErrInvalidEncoding
	}
	in := &Interpretation{buf: buf, codec: codec, idx: newChunkIndex(), tabWidth: 4}
	for _, o := range opts {
		o(in)
	}
	data := buf.Bytes()
	in.idx.tree.InsertSliceAt(0, decodeEntries(codec, data))
	in.lineReg = lines.FromCodepoints(decodeCodepoints(codec, data))
	in.token = buf.SubscribeEndModify(in.onEndModify)
	return in, nil
}

// Close unsubscribes from the buffer (spec.md 3.2: "on drop it
// unsubscribes").
func (in *Interpretation) Close() { in.buf.UnsubscribeEndModify(in.token) }

// Buffer returns the bound buffer.
func (in *Interpretation) Buffer() *textbuf.Buffer { return in.buf }

// Codec returns the bound encoding.
func (in *Interpretation) Codec() encoding.Codec { return in.codec }

// TotalCodepoints returns the document's codepoint count.
func (in *Interpretation) TotalCodepoints() int64 { return in.idx.totalCodepoints() }

// TotalCharacters returns the document's character count.
func (in *Interpretation) TotalCharacters() int64 { return in.lineReg.TotalCharacters() }

// Lines exposes the underlying line registry for read-only queries.
func (in *Interpretation) Lines() *lines.Registry { return in.lineReg }

// fetch decodes the live buffer bytes in [start, end).
func (in *Interpretation) fetch(start, end int64) []byte { return in.buf.GetClip(start, end) }

// preMutationFetch returns a fetch func reading [start, end) as it
// stood BEFORE ev was applied: bytes strictly before ev.Position come
// from the (unaffected) live buffer, and anything at or past
// ev.Position comes from ev.ErasedBytes, the content the edit removed.
// splitAt may ask for a whole straddling entry that runs past the
// erased span's end, but only reads the bytes before its split
// offset, which lie inside [0, ev.Position+erasedLen); the returned
// slice is cut off at the erased span's end.
func preMutationFetch(in *Interpretation, ev textbuf.ModifyEvent) func(start, end int64) []byte {
	return func(start, end int64) []byte {
		if end <= ev.Position {
			return in.fetch(start, end)
		}
		var out []byte
		if start < ev.Position {
			out = append(out, in.fetch(start, ev.Position)...)
			start = ev.Position
		}
		s := start - ev.Position
		e := end - ev.Position
		if e > int64(len(ev.ErasedBytes)) {
			e = int64(len(ev.ErasedBytes))
		}
		if s < e {
			out = append(out, ev.ErasedBytes[s:e]...)
		}
		return out
	}
}

// ByteToCodepoint returns the codepoint index covering bytePos and the
// byte index at which that codepoint starts.
func (in *Interpretation) ByteToCodepoint(bytePos int64) (cpIdx int64, byteIdx int64) {
	total := in.idx.totalBytes()
	if bytePos >= total {
		return in.idx.totalCodepoints(), total
	}
	sel := &byteSelector{target: bytePos}
	it := in.idx.tree.Find(sel)
	entry := it.Value()
	offset := bytePos - sel.base.Bytes
	if offset == 0 {
		return sel.base.Codepoints, sel.base.Bytes
	}
	data := in.fetch(sel.base.Bytes, sel.base.Bytes+entry.Bytes)
	// Walk codepoint boundaries up to offset; if offset lands
	// mid-codepoint, report that codepoint's own start.
	var cp int64
	i := int64(0)
	for i < offset {
		_, size := in.codec.NextCodepoint(data[i:])
		if size <= 0 {
			size = 1
		}
		if i+int64(size) > offset {
			return sel.base.Codepoints + cp, sel.base.Bytes + i
		}
		i += int64(size)
		cp++
	}
	return sel.base.Codepoints + cp, sel.base.Bytes + i
}

// CodepointToByte returns the byte offset of codepoint cp's first byte.
func (in *Interpretation) CodepointToByte(cp int64) int64 {
	total := in.idx.totalCodepoints()
	if cp >= total {
		return in.idx.totalBytes()
	}
	// Linear scan keyed on the codepoint field instead of bytes, over
	// every chunk-index entry up to the one holding cp: O(n) in the
	// number of entries, unlike the sibling ByteToCodepoint, which
	// descends the tree with byteSelector.
	var base chunkSummary
	for i := 0; i < in.idx.tree.Len(); i++ {
		e := in.idx.tree.ValueAt(i)
		if cp < base.Codepoints+e.Codepoints {
			offset := cp - base.Codepoints
			if offset == 0 {
				return base.Bytes
			}
			data := in.fetch(base.Bytes, base.Bytes+e.Bytes)
			b := int64(0)
			for n := int64(0); n < offset; n++ {
				_, size := in.codec.NextCodepoint(data[b:])
				if size <= 0 {
					size = 1
				}
				b += int64(size)
			}
			return base.Bytes + b
		}
		base.Bytes += e.Bytes
		base.Codepoints += e.Codepoints
	}
	return in.idx.totalBytes()
}

// CharacterToByte converts a character index to a byte offset.
func (in *Interpretation) CharacterToByte(ch int64) int64 {
	return in.CodepointToByte(in.lineReg.CharacterToCodepoint(ch))
}

// ByteToCharacter converts a byte offset to a character index.
func (in *Interpretation) ByteToCharacter(bytePos int64) int64 {
	cp, _ := in.ByteToCodepoint(bytePos)
	return in.lineReg.CodepointToCharacter(cp)
}

// onEndModify is spec.md 4.3's post-edit fixup entry point, driven
// directly off textbuf's end_modify event. It fires after the buffer
// has already applied the mutation (textbuf/edit.go's applyOne
// publishes end_modify post-mutation), but the chunk index is still in
// its pre-mutation shape at this point (it is only updated further
// down, via EraseRange/InsertSliceAt). splitAt needs to re-decode bytes
// around [ev.Position, ev.Position+erasedLen) in PRE-mutation
// coordinates to find codepoint-aligned split points in the stale
// index — it must not fetch that span from the live buffer, since the
// live buffer no longer contains it (or contains something else
// there, post-edit). preMutationFetch answers exactly that span using
// ev.ErasedBytes for anything at or past ev.Position, falling back to
// the live buffer only for bytes strictly before ev.Position, which
// the edit never touched.
func (in *Interpretation) onEndModify(ev textbuf.ModifyEvent) {
	erasedLen := int64(len(ev.ErasedBytes))
	insertedLen := int64(len(ev.InsertedBytes))
	preFetch := preMutationFetch(in, ev)
	startIdx := in.idx.splitAt(in.codec, ev.Position, preFetch)
	endIdx := in.idx.splitAt(in.codec, ev.Position+erasedLen, preFetch)

	// Codepoint position of the edit start, needed for the line
	// registry fixup.
	cpPos := in.idx.tree.PrefixSummary(startIdx).Codepoints

	erasedCP := countCodepoints(in.codec, ev.ErasedBytes)
	insertedEntries := decodeEntries(in.codec, ev.InsertedBytes)

	// Character span the erased codepoints cover, measured on the line
	// registry before it changes.
	firstChar := in.lineReg.CodepointToCharacter(cpPos)
	removed := in.lineReg.CodepointToCharacter(cpPos+erasedCP) - firstChar
	oldTotal := in.lineReg.TotalCharacters()

	in.idx.tree.EraseRange(startIdx, endIdx)
	if len(insertedEntries) > 0 {
		in.idx.tree.InsertSliceAt(startIdx, insertedEntries)
	}

	if erasedCP > 0 {
		in.lineReg.EraseCodepoints(cpPos, cpPos+erasedCP)
	}
	if insertedLen > 0 {
		in.lineReg.InsertCodepoints(cpPos, decodeCodepoints(in.codec, ev.InsertedBytes))
	}

	// Record this modification's effect in character coordinates, for
	// observers indexed by character rather than byte (fold, theme):
	// one entry at the first changed character, removing the erased
	// span's characters and adding what the document gained back, so a
	// replace is a single entry just like textbuf's byte-coordinate
	// entry. If the document lost more characters than the erased span
	// held (a CR just before the change fusing into a CRLF), the entry
	// is widened back over that character so Added is never negative.
	if erasedCP > 0 || insertedLen > 0 {
		added := removed + in.lineReg.TotalCharacters() - oldTotal
		if added < 0 {
			firstChar, removed, added = firstChar+added, removed-added, 0
		}
		in.charJournal = append(in.charJournal, fixup.Entry{Pos: firstChar, Removed: removed, Added: added})
	}
}

// Modify applies ops through the bound buffer; the chunk index and
// line registry stay in step via the end_modify subscription. Callers
// (the edit pipeline) are responsible for keeping every op's position
// on a codepoint boundary. The character-coordinate journal for this
// call is available immediately after from CharJournal.
func (in *Interpretation) Modify(srcID int64, ops []textbuf.Modification) []fixup.Entry {
	in.charJournal = in.charJournal[:0]
	return in.buf.Modify(srcID, ops)
}

// CharJournal returns the character-coordinate position journal
// produced by the most recent Modify, Undo, or Redo call, for
// observers that index by character rather than by byte (spec.md
// 4.9's theme maps, the fold registry).
func (in *Interpretation) CharJournal() []fixup.Entry { return in.charJournal }

// Undo reverts the buffer's most recent edit, keeping CharJournal in
// step the same way Modify does.
func (in *Interpretation) Undo(srcID int64) ([]fixup.Entry, error) {
	in.charJournal = in.charJournal[:0]
	return in.buf.Undo(srcID)
}

// Redo replays the buffer's most recently undone edit.
func (in *Interpretation) Redo(srcID int64) ([]fixup.Entry, error) {
	in.charJournal = in.charJournal[:0]
	return in.buf.Redo(srcID)
}
