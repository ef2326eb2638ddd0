package textbuf

// ByteSummary is the augtree.Summary for the chunk tree: the total
// byte count of a subtree.
type ByteSummary struct {
	Bytes int64
}

// Combine implements augtree.Summary.
func (s ByteSummary) Combine(o ByteSummary) ByteSummary {
	return ByteSummary{Bytes: s.Bytes + o.Bytes}
}

func chunkSummary(c Chunk) ByteSummary {
	return ByteSummary{Bytes: int64(len(c.data))}
}
