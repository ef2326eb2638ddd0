// Package softbreak implements spec.md's soft-linebreak registry
// (spec.md 4.7): an ordered sequence of nodes each carrying a
// character length since the previous break, overlaid on a hard line
// registry (internal/engine/lines) to produce visual lines. The
// recomputation policy (how a view chooses break positions) is
// explicitly out of scope (spec.md 9's Open Questions) — this package
// only implements the one-shot set_softbreaks primitive and the
// resulting queries.
package softbreak
