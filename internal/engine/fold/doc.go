// Package fold implements spec.md's folding registry (spec.md 4.8): an
// ordered sequence of nodes, each carrying the gap of unfolded
// characters before a folded range and the folded range's own extent,
// overlaid on augtree the same way internal/engine/lines overlays it
// for hard lines. folded_to_unfolded_char and unfolded_to_folded_char
// descend the tree converting between the full ("unfolded") character
// space and the collapsed ("folded") space a renderer walks.
package fold
