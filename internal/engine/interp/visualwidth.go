package interp

import "github.com/rivo/uniseg"

// VisualColumnWidth is supplemented from codepad's interpretation,
// which tracks a configurable tab width for column display (spec.md's
// own "column" concept is a plain codepoint count). It expands tabs to
// tabWidth and counts grapheme clusters rather than codepoints, so a
// multi-codepoint emoji or combining-mark sequence occupies one
// display column the way a renderer actually lays it out.
func (in *Interpretation) VisualColumnWidth(lineIdx int) int {
	rec := in.lineReg.LineAt(lineIdx)
	if rec.NonbreakChars == 0 {
		return 0
	}
	startCP := in.lineReg.CodepointOffsetOfLine(lineIdx)
	startByte := in.CodepointToByte(startCP)
	endByte := in.CodepointToByte(startCP + rec.NonbreakChars)
	text := string(in.fetch(startByte, endByte))

	col := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cluster == "\t" {
			col += in.tabWidth - (col % in.tabWidth)
			continue
		}
		col++
	}
	return col
}
