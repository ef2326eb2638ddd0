package augtree

// Iterator is a non-owning weak reference to a node: a (tree, index)
// pair. It stays valid across any mutation that doesn't erase its
// own node (spec.md 3.2: "other iterators remain valid after any
// mutation; the trees never relocate live nodes").
type Iterator[T any, S Summary[S]] struct {
	t *Tree[T, S]
	i int32
}

// End is the canonical invalid/one-past-the-end iterator.
func (t *Tree[T, S]) End() Iterator[T, S] { return Iterator[T, S]{t: t, i: none} }

// Valid reports whether the iterator refers to a live node.
func (it Iterator[T, S]) Valid() bool { return it.i != none }

// Value returns the referenced value.
func (it Iterator[T, S]) Value() T { return it.t.nodes[it.i].value }

// SetValue replaces the referenced value and refreshes summaries
// along the path to the root.
func (it Iterator[T, S]) SetValue(v T) {
	it.t.nodes[it.i].value = v
	it.t.refreshToRoot(it.i)
}

// Index recovers the current positional index of the referenced
// node. O(log n): walks to the root summing left-subtree sizes.
func (it Iterator[T, S]) Index() int {
	t := it.t
	idx := t.count(t.nodes[it.i].left)
	cur := it.i
	for {
		p := t.nodes[cur].parent
		if p == none {
			return idx
		}
		if t.nodes[p].right == cur {
			idx += t.count(t.nodes[p].left) + 1
		}
		cur = p
	}
}

// Next returns an iterator to the following value in sequence order,
// or End() if it is the last.
func (it Iterator[T, S]) Next() Iterator[T, S] {
	t := it.t
	i := it.i
	if r := t.nodes[i].right; r != none {
		i = r
		for t.nodes[i].left != none {
			i = t.nodes[i].left
		}
		return Iterator[T, S]{t: t, i: i}
	}
	cur := i
	p := t.nodes[cur].parent
	for p != none && t.nodes[p].right == cur {
		cur = p
		p = t.nodes[cur].parent
	}
	return Iterator[T, S]{t: t, i: p}
}

// Prev is the mirror of Next.
func (it Iterator[T, S]) Prev() Iterator[T, S] {
	t := it.t
	i := it.i
	if l := t.nodes[i].left; l != none {
		i = l
		for t.nodes[i].right != none {
			i = t.nodes[i].right
		}
		return Iterator[T, S]{t: t, i: i}
	}
	cur := i
	p := t.nodes[cur].parent
	for p != none && t.nodes[p].left == cur {
		cur = p
		p = t.nodes[cur].parent
	}
	return Iterator[T, S]{t: t, i: p}
}

// At returns an iterator to the value currently at idx.
func (t *Tree[T, S]) At(idx int) Iterator[T, S] {
	i := t.root
	for i != none {
		leftSize := t.count(t.nodes[i].left)
		switch {
		case idx < leftSize:
			i = t.nodes[i].left
		case idx == leftSize:
			return Iterator[T, S]{t: t, i: i}
		default:
			idx -= leftSize + 1
			i = t.nodes[i].right
		}
	}
	return t.End()
}

// PrefixSummary returns the combined summary of every value with
// index < idx. Like At, it is an order-statistic query driven by the
// maintained subtree size, not a Selector — prefix-sum-by-index has no
// node value to test against, only a position.
func (t *Tree[T, S]) PrefixSummary(idx int) S {
	acc := t.zero
	i := t.root
	for i != none {
		leftSize := t.count(t.nodes[i].left)
		if idx <= leftSize {
			i = t.nodes[i].left
			continue
		}
		acc = acc.Combine(t.leftSummary(i)).Combine(t.leaf(t.nodes[i].value))
		idx -= leftSize + 1
		i = t.nodes[i].right
	}
	return acc
}

// Begin returns an iterator to the first value, or End() if empty.
func (t *Tree[T, S]) Begin() Iterator[T, S] {
	if t.root == none {
		return t.End()
	}
	i := t.root
	for t.nodes[i].left != none {
		i = t.nodes[i].left
	}
	return Iterator[T, S]{t: t, i: i}
}

// Find descends the tree driving sel at each visited node, passing it
// the summary of every value before that node: Find itself
// accumulates what each Right descent skips (the visited node and its
// left subtree), so sel can read a running byte/codepoint offset
// straight off leftSummary. This is the spec's only required finding
// mechanism: every concrete finder (by-byte, by-codepoint,
// by-character, by-line, ...) is a Selector against the relevant
// summary field.
func (t *Tree[T, S]) Find(sel Selector[T, S]) Iterator[T, S] {
	acc := t.zero
	i := t.root
	for i != none {
		prefix := acc.Combine(t.leftSummary(i))
		switch sel.Visit(t.nodes[i].value, prefix) {
		case Hit:
			return Iterator[T, S]{t: t, i: i}
		case Left:
			i = t.nodes[i].left
		case Right:
			acc = prefix.Combine(t.leaf(t.nodes[i].value))
			i = t.nodes[i].right
		}
	}
	return t.End()
}

// Erase removes the value at it and returns the next iterator
// (spec.md 4.1: "erase returns the successor index").
func (it Iterator[T, S]) Erase() Iterator[T, S] {
	idx := it.Index()
	succ := it.Next()
	succIdx := -1
	if succ.Valid() {
		succIdx = succ.Index()
	}
	it.t.EraseAt(idx)
	if succIdx < 0 {
		return it.t.End()
	}
	return it.t.At(succIdx)
}

// InsertBefore inserts v immediately before it, returning an
// iterator to the new node.
func (it Iterator[T, S]) InsertBefore(v T) Iterator[T, S] {
	idx := it.t.Len()
	if it.Valid() {
		idx = it.Index()
	}
	it.t.InsertAt(idx, v)
	return it.t.At(idx)
}
