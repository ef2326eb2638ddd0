package theme

import "sort"

// Walker is spec.md 4.9's dual-map rendering iterator: it walks a
// style Map and a color Map in parallel, emitting a new effective
// pair whenever either underlying step advances past a character
// (SPEC_FULL.md's supplemented theme.Walk, grounded on codepad's
// theme.h dual-map iterator contract).
type Walker struct {
	style, color       *Map
	si, ci             int
	curStyle, curColor string
	pos                int64
}

// Walk starts a walker positioned at character 0, with the style and
// color in effect there.
func Walk(style, color *Map) *Walker {
	w := &Walker{style: style, color: color}
	w.curStyle = style.GetAt(0)
	w.curColor = color.GetAt(0)
	w.si = sort.Search(len(style.entries), func(i int) bool { return style.entries[i].Pos > 0 })
	w.ci = sort.Search(len(color.entries), func(i int) bool { return color.entries[i].Pos > 0 })
	return w
}

// Pos returns the position of the walker's current step.
func (w *Walker) Pos() int64 { return w.pos }

// Style returns the style value in effect at Pos.
func (w *Walker) Style() string { return w.curStyle }

// Color returns the color value in effect at Pos.
func (w *Walker) Color() string { return w.curColor }

// Next advances to the next boundary in either map, reporting whether
// one exists.
func (w *Walker) Next() bool {
	hasStyle := w.si < len(w.style.entries)
	hasColor := w.ci < len(w.color.entries)
	if !hasStyle && !hasColor {
		return false
	}
	next := int64(0)
	switch {
	case hasStyle && hasColor:
		next = w.style.entries[w.si].Pos
		if w.color.entries[w.ci].Pos < next {
			next = w.color.entries[w.ci].Pos
		}
	case hasStyle:
		next = w.style.entries[w.si].Pos
	default:
		next = w.color.entries[w.ci].Pos
	}
	if hasStyle && w.style.entries[w.si].Pos == next {
		w.curStyle = w.style.entries[w.si].Value
		w.si++
	}
	if hasColor && w.color.entries[w.ci].Pos == next {
		w.curColor = w.color.entries[w.ci].Value
		w.ci++
	}
	w.pos = next
	return true
}
