package lines

import "github.com/dshills/keystorm-core/internal/engine/augtree"

// filler stands in for an arbitrary non-breaking codepoint when a line
// record's nonbreak run is expanded back into a synthetic codepoint
// stream for re-analysis: only its break/non-break nature matters to
// Analyze, never its identity.
const filler = rune(0xFFFC)

// CharRangeAffected reports the character span of the whole lines a
// registry mutation re-analyzed and replaced: FirstChar is the start
// of the first replaced line, OldChars and NewChars are the character
// counts of the replaced lines and of their replacements.
type CharRangeAffected struct {
	FirstChar int64
	OldChars  int64
	NewChars  int64
}

// Registry is spec.md's line registry.
type Registry struct {
	tree *augtree.Tree[Record, Summary]
}

// New creates a registry for an empty document: a single line record
// (0, none) per spec.md 3.1's invariant that exactly one record has
// ending none.
func New() *Registry {
	r := &Registry{tree: augtree.New[Record, Summary](leafSummary, Summary{})}
	r.tree.InsertAt(0, Record{})
	return r
}

// FromCodepoints builds a registry by running the linebreak analyzer
// over an entire document's codepoints.
func FromCodepoints(cps []rune) *Registry {
	r := &Registry{tree: augtree.New[Record, Summary](leafSummary, Summary{})}
	r.tree.InsertSliceAt(0, Analyze(cps))
	return r
}

func (r *Registry) LineCount() int { return r.tree.Len() }
func (r *Registry) LineAt(i int) Record { return r.tree.ValueAt(i) }

func (r *Registry) TotalCodepoints() int64 { return r.tree.Summary().Codepoints }
func (r *Registry) TotalCharacters() int64 { return r.tree.Summary().Characters }
func (r *Registry) TotalLinebreaks() int64 { return r.tree.Summary().Linebreaks }

// CodepointOffsetOfLine returns the codepoint offset of the start of
// line i.
func (r *Registry) CodepointOffsetOfLine(i int) int64 { return r.tree.PrefixSummary(i).Codepoints }

// CharOffsetOfLine returns the character offset of the start of line i.
func (r *Registry) CharOffsetOfLine(i int) int64 { return r.tree.PrefixSummary(i).Characters }

// lineAndOffsetByCodepoint returns the line containing codepoint pos
// and the codepoint's offset within that line, clamping pos to the
// last valid position (the end of the document).
func (r *Registry) lineAndOffsetByCodepoint(pos int64) (line int, offset int64) {
	total := r.TotalCodepoints()
	if pos >= total {
		line = r.tree.Len() - 1
		offset = r.tree.ValueAt(line).Codepoints()
		return
	}
	sel := &codepointSelector{target: pos}
	it := r.tree.Find(sel)
	return it.Index(), pos - sel.base
}

// CodepointToLine returns the (line, column-in-codepoints) of a
// codepoint position.
func (r *Registry) CodepointToLine(pos int64) (line int, column int64) {
	return r.lineAndOffsetByCodepoint(pos)
}

// CharacterToLine returns the (line, column-in-characters) of a
// character position.
func (r *Registry) CharacterToLine(pos int64) (line int, column int64) {
	total := r.TotalCharacters()
	if pos >= total {
		line = r.tree.Len() - 1
		column = r.tree.ValueAt(line).Characters()
		return
	}
	sel := &characterSelector{target: pos}
	it := r.tree.Find(sel)
	return it.Index(), pos - sel.base
}

// CharacterToCodepoint converts a character index to the codepoint
// index of the same position (spec.md 8: monotone non-decreasing,
// delta 1 except across a CRLF boundary).
func (r *Registry) CharacterToCodepoint(ch int64) int64 {
	line, col := r.CharacterToLine(ch)
	rec := r.tree.ValueAt(line)
	base := r.CodepointOffsetOfLine(line)
	if col < rec.NonbreakChars {
		return base + col
	}
	// col addresses the ending "character" (0 or 1 past nonbreak).
	// A CRLF ending is one character but two codepoints; any other
	// ending is one codepoint.
	return base + rec.NonbreakChars
}

// CodepointToCharacter converts a codepoint index to the character
// index of the same position. Both codepoints of a CRLF ending map to
// the same character index, since a CRLF is one character.
func (r *Registry) CodepointToCharacter(cp int64) int64 {
	line, col := r.lineAndOffsetByCodepoint(cp)
	rec := r.tree.ValueAt(line)
	base := r.CharOffsetOfLine(line)
	if col <= rec.NonbreakChars {
		return base + col
	}
	return base + rec.NonbreakChars
}

// lineStream expands a single line record back into a synthetic
// codepoint stream of filler runes plus its real ending runes.
func lineStream(r Record) []rune {
	out := make([]rune, 0, r.NonbreakChars+2)
	for i := int64(0); i < r.NonbreakChars; i++ {
		out = append(out, filler)
	}
	switch r.Ending {
	case CR:
		out = append(out, '\r')
	case LF:
		out = append(out, '\n')
	case CRLF:
		out = append(out, '\r', '\n')
	}
	return out
}

// buildRange reconstructs the synthetic stream for lines
// [startLine, endLine], and extends endLine by one further untouched
// line whenever endLine is not the document's last line — the
// trailing fragment Analyze produces for a non-final line always
// needs a real terminating break to close over, which (by the "only
// the last record has ending none" invariant) the immediately
// following original line is guaranteed to supply.
func (r *Registry) buildRange(startLine, endLine int) (stream []rune, finalEndLine int, isDocEnd bool) {
	last := r.tree.Len() - 1
	if endLine < last {
		endLine++
	}
	for i := startLine; i <= endLine; i++ {
		stream = append(stream, lineStream(r.tree.ValueAt(i))...)
	}
	return stream, endLine, endLine == last
}

func sumChars(recs []Record) int64 {
	var total int64
	for _, r := range recs {
		total += r.Characters()
	}
	return total
}

// splice replaces lines [startLine, endLine] with newStream re-analyzed,
// dropping Analyze's synthetic trailing empty record unless the range
// reaches the true document end.
func (r *Registry) splice(startLine, endLine int, newStream []rune, isDocEnd bool) CharRangeAffected {
	startChar := r.CharOffsetOfLine(startLine)
	var oldChars int64
	for i := startLine; i <= endLine; i++ {
		oldChars += r.tree.ValueAt(i).Characters()
	}
	recs := Analyze(newStream)
	if !isDocEnd {
		recs = recs[:len(recs)-1]
	}
	newChars := sumChars(recs)
	r.tree.EraseRange(startLine, endLine+1)
	if len(recs) > 0 {
		r.tree.InsertSliceAt(startLine, recs)
	} else if r.tree.Len() == 0 {
		// The document must always have at least one line.
		r.tree.InsertAt(0, Record{})
	}
	return CharRangeAffected{FirstChar: startChar, OldChars: oldChars, NewChars: newChars}
}

// InsertCodepoints inserts cps at codepoint position pos (spec.md 4.4:
// "Insert codepoints at position"). Splitting a CRLF the insertion
// point falls inside, and CR-LF fusion at either boundary, both fall
// out of re-analyzing the affected line range rather than needing
// dedicated split/merge bookkeeping.
func (r *Registry) InsertCodepoints(pos int64, cps []rune) CharRangeAffected {
	line, offset := r.lineAndOffsetByCodepoint(pos)
	stream, endLine, isDocEnd := r.buildRange(line, line)
	newStream := make([]rune, 0, len(stream)+len(cps))
	newStream = append(newStream, stream[:offset]...)
	newStream = append(newStream, cps...)
	newStream = append(newStream, stream[offset:]...)
	return r.splice(line, endLine, newStream, isDocEnd)
}

// EraseCodepoints erases the codepoint range [begin, end) (spec.md
// 4.4: "Erase codepoint range").
func (r *Registry) EraseCodepoints(begin, end int64) CharRangeAffected {
	if end <= begin {
		return CharRangeAffected{}
	}
	startLine, _ := r.lineAndOffsetByCodepoint(begin)
	endLine, _ := r.lineAndOffsetByCodepoint(end)
	startCP := r.CodepointOffsetOfLine(startLine)
	stream, finalEndLine, isDocEnd := r.buildRange(startLine, endLine)
	localBegin := begin - startCP
	localEnd := end - startCP
	newStream := make([]rune, 0, len(stream)-int(localEnd-localBegin))
	newStream = append(newStream, stream[:localBegin]...)
	newStream = append(newStream, stream[localEnd:]...)
	return r.splice(startLine, finalEndLine, newStream, isDocEnd)
}
