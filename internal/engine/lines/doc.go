// Package lines implements spec.md's line registry (spec.md 3.1, 4.4):
// an ordered sequence of line records over codepoints, each carrying a
// non-break codepoint count and a linebreak kind (none, CR, LF, CRLF),
// backed by internal/engine/augtree the same way textbuf's chunk
// sequence is. It owns the CR/LF merge and split rules and the
// linebreak analyzer finite automaton, and answers character /
// codepoint / (line, column) conversions.
package lines
