package edit

import (
	"github.com/dshills/keystorm-core/internal/engine/carets"
	"github.com/dshills/keystorm-core/internal/engine/fixup"
	"github.com/dshills/keystorm-core/internal/engine/interp"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

// Pipeline is spec.md's edit pipeline.
type Pipeline struct {
	in        *interp.Interpretation
	carets    *carets.Set
	observers []func(journal []fixup.Entry)
}

// New builds a pipeline over in, driving set.
func New(in *interp.Interpretation, set *carets.Set) *Pipeline {
	return &Pipeline{in: in, carets: set}
}

// Subscribe registers an end_edit observer (fold registry, theme map,
// decoration providers — spec.md 4.6 step 4).
func (p *Pipeline) Subscribe(fn func(journal []fixup.Entry)) {
	p.observers = append(p.observers, fn)
}

// Carets returns the pipeline's caret set.
func (p *Pipeline) Carets() *carets.Set { return p.carets }

func (p *Pipeline) ensureByteCache() {
	if !p.carets.BytePositionsValid() {
		p.carets.CalculateBytePositions(p.in.CharacterToByte)
	}
}

// apply submits ops through the buffer, patches the caret set from the
// byte-coordinate journal, and runs every observer's fixup over the
// character-coordinate journal (spec.md 4.6 steps 3-4; spec.md 4.9:
// "the map is patched through the position journal identically to
// other character-indexed observers").
func (p *Pipeline) apply(srcID int64, ops []textbuf.Modification) []fixup.Entry {
	journal := p.in.Modify(srcID, ops)
	p.carets.Fixup(journal, p.in.ByteToCharacter)
	charJournal := p.in.CharJournal()
	for _, obs := range p.observers {
		obs(charJournal)
	}
	return journal
}

// Insert types text at every caret, replacing each caret's selection
// if non-empty (spec.md 4.6: "insert content is the same for all
// carets").
func (p *Pipeline) Insert(srcID int64, text []byte) []fixup.Entry {
	p.ensureByteCache()
	entries := p.carets.All()
	ops := make([]textbuf.Modification, 0, len(entries))
	var delta int64
	for _, e := range entries {
		pos := e.BytePosFirst + delta
		eraseLen := e.BytePosSecond - e.BytePosFirst
		ops = append(ops, textbuf.Modification{Pos: pos, EraseLen: eraseLen, Insert: text})
		delta += int64(len(text)) - eraseLen
	}
	return p.apply(srcID, ops)
}

// Delete erases each caret's selection, or one character forward of
// an empty caret (spec.md 4.6's "delete" primitive).
func (p *Pipeline) Delete(srcID int64) []fixup.Entry {
	return p.eraseOneOrSelection(srcID, true)
}

// Backspace erases each caret's selection, or one character backward
// of an empty caret.
func (p *Pipeline) Backspace(srcID int64) []fixup.Entry {
	return p.eraseOneOrSelection(srcID, false)
}

func (p *Pipeline) eraseOneOrSelection(srcID int64, forward bool) []fixup.Entry {
	p.ensureByteCache()
	entries := p.carets.All()
	ops := make([]textbuf.Modification, 0, len(entries))
	var delta int64
	for _, e := range entries {
		start, end := e.BytePosFirst, e.BytePosSecond
		if start == end {
			ch := e.Caret
			if forward {
				end = p.in.CharacterToByte(ch + 1)
			} else {
				start = p.in.CharacterToByte(ch - 1)
			}
		}
		if start > end {
			start, end = end, start
		}
		pos := start + delta
		eraseLen := end - start
		ops = append(ops, textbuf.Modification{Pos: pos, EraseLen: eraseLen})
		delta -= eraseLen
	}
	return p.apply(srcID, ops)
}

// Undo reverts the most recent edit (spec.md 4.2's undo, driven
// through the same observer fixup path).
func (p *Pipeline) Undo(srcID int64) ([]fixup.Entry, error) {
	journal, err := p.in.Undo(srcID)
	if err != nil {
		return nil, err
	}
	p.carets.Fixup(journal, p.in.ByteToCharacter)
	charJournal := p.in.CharJournal()
	for _, obs := range p.observers {
		obs(charJournal)
	}
	return journal, nil
}

// Redo replays the most recently undone edit.
func (p *Pipeline) Redo(srcID int64) ([]fixup.Entry, error) {
	journal, err := p.in.Redo(srcID)
	if err != nil {
		return nil, err
	}
	p.carets.Fixup(journal, p.in.ByteToCharacter)
	charJournal := p.in.CharJournal()
	for _, obs := range p.observers {
		obs(charJournal)
	}
	return journal, nil
}
