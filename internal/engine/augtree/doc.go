// Package augtree implements the generic augmented order-statistic
// tree that underlies the engine's positional structures: the byte
// buffer's chunk sequence, the codepoint chunk index, the line
// registry, the soft-linebreak registry, and the folding registry.
// (The theme parameter map is a sorted slice, not a Tree.)
//
// A Tree[T, S] holds a sequence of values of type T. Each node also
// carries an S — a per-subtree summary that is a monoid over the
// node's own leaf summary and its children's summaries, recomputed
// bottom-up after every structural change. Positional queries (by
// index, by byte offset, by codepoint, by line, ...) are all
// expressed as a Selector[T, S] descent against the appropriate
// summary field, rather than as one bespoke traversal per structure.
//
// Nodes live in an arena (a slice addressed by int32 index) rather
// than as separately allocated pointers, per the node-with-parent-
// back-link model: an Iterator is a (tree, index) pair, not a raw
// pointer, and stays valid across any mutation that does not erase
// its own node.
//
// Structural edits (InsertAt, InsertSliceAt, EraseAt, EraseRange) are
// built on split/join over the implicit index ordering, same as the
// teacher's rope; InsertSliceAt's bulk path additionally rebuilds its
// inserted run as a balanced subtree (buildBalanced) before splicing
// it in, rather than folding in one element at a time. Neither path
// rebalances the tree as a whole: a long run of single-element
// InsertAt calls at the same edge can still skew the tree, the same
// way repeated appends skew an untouched BST. Splay (zig/zig-zig/
// zig-zag to root) is provided as a caller-invoked primitive, listed
// in spec.md 4.1 alongside rotate-left/right and refresh-one/whole,
// not wired into Find or the insert/erase paths automatically — a
// caller with a skewed access pattern calls it explicitly to bring a
// hot node to the root, the same way RotateLeft/RotateRight are
// caller-invoked rather than automatic.
package augtree
