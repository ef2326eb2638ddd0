// Package textbuf implements spec.md's byte buffer (component 2):
// an ordered sequence of bytes stored as a tree-of-chunks over
// internal/engine/augtree, with chunked random access, an atomic
// multi-modification edit pipeline, and undo/redo history.
//
// Grounded on the teacher's internal/engine/rope (chunked immutable
// text storage) and internal/engine/history (Command/Invert undo
// stack), re-pointed at spec.md's byte-level Modification/Edit model
// and its required begin_modify/end_modify/begin_edit/end_edit event
// sequence instead of the teacher's rope-level Insert/Delete API.
package textbuf
