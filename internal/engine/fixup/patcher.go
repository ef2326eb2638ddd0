package fixup

// Entry is one (position, removed_len, added_len) journal record
// produced by a single modification within an edit.
type Entry struct {
	Pos     int64
	Removed int64
	Added   int64
}

// Policy resolves a position that lands strictly inside a removed
// span.
type Policy int

const (
	// Front snaps the position to the start of the removed span.
	Front Policy = iota
	// Back snaps the position to the end of the inserted replacement.
	Back
	// TryKeep preserves the position's offset into the removed span
	// when possible, clamping to the end of the replacement otherwise.
	TryKeep
)

// Patch advances p through journal in increasing order, applying
// p += added - removed for every entry p has already moved past, and
// resolving per policy when p lands at or inside an entry's removed
// span. A pure insertion (Removed == 0) has an empty removed span but
// still a single position, e.Pos, that sits exactly at the edit; the
// span tested against is therefore [e.Pos, e.Pos+max(Removed,1)), not
// [e.Pos, e.Pos+Removed), so that position is resolved by policy
// (Back: snap to e.Pos+Added) instead of passing through untouched —
// matching the original source's fixup_position_max, which breaks on
// `position > cp`, not `>=`, so a position exactly at an insertion
// point still advances past it.
func Patch(journal []Entry, p int64, policy Policy) int64 {
	for _, e := range journal {
		span := maxI64(e.Removed, 1)
		switch {
		case p >= e.Pos+span:
			p += e.Added - e.Removed
		case p >= e.Pos:
			switch policy {
			case Front:
				p = e.Pos
			case Back:
				p = e.Pos + e.Added
			case TryKeep:
				if p > e.Pos+e.Added {
					p = e.Pos + e.Added
				}
			}
		}
	}
	return p
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Patcher is a reusable view over one journal, for observers that
// need to patch many positions (theme maps, fold registries) without
// re-threading the journal slice through every call.
type Patcher struct {
	Journal []Entry
	Policy  Policy
}

// Patch patches a single position through the patcher's journal.
func (p Patcher) Patch(pos int64) int64 {
	return Patch(p.Journal, pos, p.Policy)
}

// IsEmpty reports whether the journal has no entries (an edit batch
// that made no modification).
func (p Patcher) IsEmpty() bool { return len(p.Journal) == 0 }
