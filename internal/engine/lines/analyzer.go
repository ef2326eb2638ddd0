package lines

// Analyze runs the linebreak analyzer finite automaton over a sequence
// of codepoints (spec.md 4.4: "fed codepoints one by one; on finish it
// emits the final (possibly empty) line with ending none. A CR
// followed by anything other than LF emits a CR-terminated line; CR at
// end-of-input is emitted as a CR line.").
func Analyze(cps []rune) []Record {
	var out []Record
	var nonbreak int64
	pendingCR := false

	flush := func(ending Ending) {
		out = append(out, Record{NonbreakChars: nonbreak, Ending: ending})
		nonbreak = 0
	}

	for _, r := range cps {
		if pendingCR {
			pendingCR = false
			if r == '\n' {
				flush(CRLF)
				continue
			}
			flush(CR)
			// fall through: r still needs processing as start of next line
		}
		switch r {
		case '\r':
			pendingCR = true
		case '\n':
			flush(LF)
		default:
			nonbreak++
		}
	}
	if pendingCR {
		flush(CR)
	}
	out = append(out, Record{NonbreakChars: nonbreak, Ending: None})
	return out
}
