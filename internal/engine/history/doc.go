// Package history decorates internal/engine/edit.Pipeline's undo stack
// with human-readable descriptions, the way the teacher's
// Command.Description() named every undoable action for a UI's Edit
// menu. spec.md's edit pipeline already owns the actual undo/redo
// mechanics (textbuf.Buffer's edit history, one entry per Modify call);
// this package adds nothing to that mechanism, only a parallel stack of
// names a caller can show alongside Undo/Redo.
package history
