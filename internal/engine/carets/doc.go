// Package carets implements spec.md's caret set (spec.md 4.5): an
// ordered-by-pair set of (anchor, caret) entries with the symmetric
// overlap-merge predicate spec.md's Design Notes adopt (one of two
// parallel definitions present in the original source), plus byte
// position caches invalidated on edit.
//
// Shaped after the teacher's internal/engine/cursor.CursorSet — sorted
// slice, normalize-on-mutate — generalized from single-offset cursors
// to spec.md's richer caret entry (anchor/caret in characters, per-caret
// alignment and soft-wrap data, byte position cache).
package carets
