// Package interp implements spec.md's interpretation (spec.md 4.3): it
// binds a textbuf.Buffer and an encoding.Codec, maintains a
// chunk-index tree of (bytes, codepoints) runs for byte<->codepoint
// translation, and drives an internal/engine/lines registry in step
// with every buffer edit by subscribing to the buffer's end_modify
// event.
//
// The chunk index is kept incremental: because every edit that
// reaches it through Modify from edit.Pipeline (Insert/Delete/
// Backspace) picks byte positions from an existing codepoint
// boundary, a single
// modification's erased/inserted byte ranges never split a codepoint,
// so the chunk-index fixup only has to re-decode the modified bytes
// plus, at most, the two chunk-index entries straddling its
// endpoints — not the whole document. This approximates spec.md
//4.3's fuller pre/post-boundary-list algorithm with a simpler
// always-correct incremental re-decode local to the edit; see
// DESIGN.md for the tradeoff.
package interp
