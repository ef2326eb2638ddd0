package theme

import (
	"sort"

	"github.com/dshills/keystorm-core/internal/engine/fixup"
)

type entry struct {
	Pos   int64
	Value string
}

// Map is spec.md 4.9's ordered position -> value step function for a
// single theme parameter. The zero value is an empty map, reading as
// "" (no override) everywhere.
type Map struct {
	entries []entry
}

// New creates an empty map.
func New() *Map { return &Map{} }

// GetAt returns the value in effect at position p: lower bound, then
// step back one (spec.md 4.9).
func (m *Map) GetAt(p int64) string {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Pos > p })
	if i == 0 {
		return ""
	}
	return m.entries[i-1].Value
}

func (m *Map) eraseRange(begin, end int64) {
	lo := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Pos > begin })
	hi := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Pos > end })
	m.entries = append(m.entries[:lo], m.entries[hi:]...)
}

func (m *Map) insert(pos int64, value string) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Pos >= pos })
	if i < len(m.entries) && m.entries[i].Pos == pos {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry{pos, value}
}

// SetRange sets the value over [begin, end) (spec.md 4.9: "capture the
// value at end, erase entries in (begin, end], insert (begin, value)
// if different from the predecessor, insert (end, v_end) if different
// from value").
func (m *Map) SetRange(begin, end int64, value string) {
	if end <= begin {
		return
	}
	vEnd := m.GetAt(end)
	m.eraseRange(begin, end)
	pred := m.GetAt(begin)
	if value != pred {
		m.insert(begin, value)
	}
	if vEnd != value {
		m.insert(end, vEnd)
	}
}

// Fixup patches every step boundary through a character-coordinate
// position journal, collapsing any boundaries an edit made coincide
// by keeping the later (more rightward) original step's value — the
// value it bore immediately follows the deleted span (spec.md 5: "the
// map is patched through the position journal identically to other
// character-indexed observers").
func (m *Map) Fixup(journal []fixup.Entry) {
	out := make([]entry, 0, len(m.entries))
	for _, e := range m.entries {
		pos := fixup.Patch(journal, e.Pos, fixup.Back)
		if len(out) > 0 && out[len(out)-1].Pos >= pos {
			out[len(out)-1] = entry{pos, e.Value}
		} else {
			out = append(out, entry{pos, e.Value})
		}
	}
	m.entries = out
}

// rawInsert appends a boundary directly, used only by Restore which
// already has a deduplicated, ascending record list.
func (m *Map) rawInsert(pos int64, value string) {
	m.entries = append(m.entries, entry{pos, value})
}
