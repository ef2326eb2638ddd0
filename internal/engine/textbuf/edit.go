package textbuf

import "github.com/dshills/keystorm-core/internal/engine/fixup"

// Modify atomically applies ops, which must be given in ascending
// Pos order with each Pos already expressed in post-earlier-
// modifications coordinates of this same edit (spec.md 3.1, 4.2).
// It fires BeginEdit, then BeginModify/apply/EndModify per op, then
// EndEdit with the full position journal, and records the edit as
// one undo unit.
func (b *Buffer) Modify(srcID int64, ops []Modification) []fixup.Entry {
	for i := 1; i < len(ops); i++ {
		if ops[i].Pos < ops[i-1].Pos {
			panicOnProgrammerError("textbuf: Modify requires ascending positions, got %d after %d", ops[i].Pos, ops[i-1].Pos)
		}
	}
	b.publishBeginEdit(EditEvent{Type: EditNormal, SourceID: srcID})

	mods := make([]appliedMod, 0, len(ops))
	journal := make([]fixup.Entry, 0, len(ops))
	for _, op := range ops {
		if op.Pos+op.EraseLen > b.Length() {
			panicOnProgrammerError("textbuf: modification erase range [%d,%d) exceeds buffer length %d", op.Pos, op.Pos+op.EraseLen, b.Length())
		}
		erased := b.applyOne(op)
		mods = append(mods, appliedMod{Pos: op.Pos, Erased: erased, Insert: op.Insert})
		journal = append(journal, fixup.Entry{Pos: op.Pos, Removed: op.EraseLen, Added: int64(len(op.Insert))})
	}

	b.pushHistory(Edit{Type: EditNormal, Mods: mods})

	ev := EditEvent{Type: EditNormal, SourceID: srcID, Journal: journal}
	b.publishEndEdit(ev)
	return journal
}

// applyOne performs the erase-then-insert of a single modification,
// firing BeginModify/EndModify around it, and returns the bytes
// actually erased.
func (b *Buffer) applyOne(op Modification) []byte {
	b.publishBeginModify(ModifyEvent{Position: op.Pos, ErasedBytes: nil, InsertedBytes: op.Insert})
	erased := b.eraseBytes(op.Pos, op.EraseLen)
	b.insertBytes(op.Pos, op.Insert)
	b.publishEndModify(ModifyEvent{Position: op.Pos, ErasedBytes: erased, InsertedBytes: op.Insert})
	return erased
}

func (b *Buffer) pushHistory(e Edit) {
	b.history = b.history[:b.editCursor]
	b.history = append(b.history, e)
	b.editCursor++
	if len(b.history) > b.maxHistory {
		drop := len(b.history) - b.maxHistory
		b.history = b.history[drop:]
		b.editCursor -= drop
	}
}

// CanUndo reports whether Undo has an edit to revert.
func (b *Buffer) CanUndo() bool { return b.editCursor > 0 }

// CanRedo reports whether Redo has an edit to replay.
func (b *Buffer) CanRedo() bool { return b.editCursor < len(b.history) }

// Undo reverts the most recent edit not yet undone, replaying the
// inverse of each of its modifications in order with positions
// adjusted by the running diff of the inverse operations (spec.md
// 4.2). It returns the position journal of the inverse edit.
func (b *Buffer) Undo(srcID int64) ([]fixup.Entry, error) {
	if !b.CanUndo() {
		return nil, ErrNothingToUndo
	}
	edit := b.history[b.editCursor-1]

	b.publishBeginEdit(EditEvent{Type: EditUndo, SourceID: srcID})

	journal := make([]fixup.Entry, 0, len(edit.Mods))
	var diff int64
	for _, m := range edit.Mods {
		pos := m.Pos + diff
		b.applyOne(Modification{Pos: pos, EraseLen: int64(len(m.Insert)), Insert: m.Erased})
		journal = append(journal, fixup.Entry{Pos: pos, Removed: int64(len(m.Insert)), Added: int64(len(m.Erased))})
		diff += int64(len(m.Erased)) - int64(len(m.Insert))
	}
	b.editCursor--

	ev := EditEvent{Type: EditUndo, SourceID: srcID, Journal: journal}
	b.publishEndEdit(ev)
	return journal, nil
}

// Redo replays the edit most recently undone, using its originally
// recorded absolute positions verbatim (spec.md 4.2).
func (b *Buffer) Redo(srcID int64) ([]fixup.Entry, error) {
	if !b.CanRedo() {
		return nil, ErrNothingToRedo
	}
	edit := b.history[b.editCursor]

	b.publishBeginEdit(EditEvent{Type: EditRedo, SourceID: srcID})

	journal := make([]fixup.Entry, 0, len(edit.Mods))
	for _, m := range edit.Mods {
		b.applyOne(Modification{Pos: m.Pos, EraseLen: int64(len(m.Erased)), Insert: m.Insert})
		journal = append(journal, fixup.Entry{Pos: m.Pos, Removed: int64(len(m.Erased)), Added: int64(len(m.Insert))})
	}
	b.editCursor++

	ev := EditEvent{Type: EditRedo, SourceID: srcID, Journal: journal}
	b.publishEndEdit(ev)
	return journal, nil
}
