// Package theme implements spec.md's theme parameter maps (spec.md
// 4.9): a position -> value step function per parameter (style,
// color), backed by an ordered map. Walk combines a style Map and a
// color Map into the dual-map rendering iterator spec.md's theme.h
// contract describes, and Snapshot/Restore serialize a pair of maps
// to and from JSON for debug dumps and tests (SPEC_FULL.md's
// supplemented feature, grounded on the teacher's tidwall/gjson and
// tidwall/sjson dependency).
package theme
