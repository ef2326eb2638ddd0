package lines

// Summary is the per-subtree fold over line records: total codepoints,
// total characters, and total linebreaks (spec.md 3.1). Line count
// itself does not need a dedicated field — augtree already maintains
// subtree size for by-index access.
type Summary struct {
	Codepoints int64
	Characters int64
	Linebreaks int64
}

func (s Summary) Combine(o Summary) Summary {
	return Summary{
		Codepoints: s.Codepoints + o.Codepoints,
		Characters: s.Characters + o.Characters,
		Linebreaks: s.Linebreaks + o.Linebreaks,
	}
}

func leafSummary(r Record) Summary {
	lb := int64(0)
	if r.Ending != None {
		lb = 1
	}
	return Summary{Codepoints: r.Codepoints(), Characters: r.Characters(), Linebreaks: lb}
}
