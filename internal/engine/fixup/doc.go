// Package fixup implements the position-fixup journal and patcher
// that every position-indexed observer (carets, theme maps, fold
// registries, decoration providers) uses to patch its own stored
// positions through an edit, per spec.md 4.2 and 4.6.
//
// An edit produces an Entry per modification: the byte or character
// position it touched, how much it removed, and how much it added.
// Patch walks a position through the journal, applying the net
// length delta for entries the position has moved past and resolving
// positions that land inside a removed span according to a Policy.
package fixup
