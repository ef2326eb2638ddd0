package history

import (
	"errors"

	"github.com/dshills/keystorm-core/internal/engine/edit"
	"github.com/dshills/keystorm-core/internal/engine/fixup"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

// ErrNothingToUndo and ErrNothingToRedo mirror textbuf's own undo/redo
// errors; Tracker surfaces them unchanged so callers can tell an empty
// stack from a real failure.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Tracker pairs every edit the pipeline performs with a description, so
// a caller can label an Edit menu's Undo/Redo entries the way the
// teacher's Command.Description() did.
type Tracker struct {
	p       *edit.Pipeline
	undone  []string
	pending []string
}

// New wraps p, tracking descriptions for edits made through the
// returned Tracker. Edits made directly through p bypass tracking.
func New(p *edit.Pipeline) *Tracker {
	return &Tracker{p: p}
}

// Insert types text at every caret under description (e.g. "Type", "Paste").
func (t *Tracker) Insert(srcID int64, text []byte, description string) []fixup.Entry {
	entries := t.p.Insert(srcID, text)
	t.record(description)
	return entries
}

// Delete erases each caret's selection or one forward character.
func (t *Tracker) Delete(srcID int64, description string) []fixup.Entry {
	entries := t.p.Delete(srcID)
	t.record(description)
	return entries
}

// Backspace erases each caret's selection or one backward character.
func (t *Tracker) Backspace(srcID int64, description string) []fixup.Entry {
	entries := t.p.Backspace(srcID)
	t.record(description)
	return entries
}

// Apply runs an arbitrary modification batch through the pipeline under
// description, for callers building ops directly (e.g. find-and-replace).
func (t *Tracker) Apply(srcID int64, ops []textbuf.Modification, description string, apply func(int64, []textbuf.Modification) []fixup.Entry) []fixup.Entry {
	entries := apply(srcID, ops)
	t.record(description)
	return entries
}

func (t *Tracker) record(description string) {
	t.pending = append(t.pending, description)
	t.undone = t.undone[:0]
}

// Undo reverts the most recent edit and returns its description.
func (t *Tracker) Undo(srcID int64) (string, []fixup.Entry, error) {
	if len(t.pending) == 0 {
		return "", nil, ErrNothingToUndo
	}
	journal, err := t.p.Undo(srcID)
	if err != nil {
		return "", nil, err
	}
	n := len(t.pending) - 1
	desc := t.pending[n]
	t.pending = t.pending[:n]
	t.undone = append(t.undone, desc)
	return desc, journal, nil
}

// Redo replays the most recently undone edit and returns its description.
func (t *Tracker) Redo(srcID int64) (string, []fixup.Entry, error) {
	if len(t.undone) == 0 {
		return "", nil, ErrNothingToRedo
	}
	journal, err := t.p.Redo(srcID)
	if err != nil {
		return "", nil, err
	}
	n := len(t.undone) - 1
	desc := t.undone[n]
	t.undone = t.undone[:n]
	t.pending = append(t.pending, desc)
	return desc, journal, nil
}

// UndoDescription returns the description of the edit Undo would
// revert next, and whether one exists.
func (t *Tracker) UndoDescription() (string, bool) {
	if len(t.pending) == 0 {
		return "", false
	}
	return t.pending[len(t.pending)-1], true
}

// RedoDescription returns the description of the edit Redo would
// replay next, and whether one exists.
func (t *Tracker) RedoDescription() (string, bool) {
	if len(t.undone) == 0 {
		return "", false
	}
	return t.undone[len(t.undone)-1], true
}
