// Package edit implements spec.md's edit pipeline (spec.md 4.6):
// expands a UI-level intent (type, backspace, delete) into one
// byte-level Modification per caret, submits them as a single
// textbuf.Buffer.Modify call, patches the carets from the returned
// byte-coordinate journal, and drives every registered observer's
// fixup over the interpretation's character-coordinate journal.
//
// Grounded on the teacher's engine.Engine facade shape (Insert,
// Replace, Execute) but narrowed to exactly this one contract: it owns
// no buffer or interpretation state of its own, only the caret set and
// the observer subscription list.
package edit
