// Package docreg implements spec.md's buffer/interpretation registry
// (spec.md 4.10): single process-wide state mapping canonical paths
// and unnamed-buffer ids to weakly-held buffers, and each buffer to
// its weakly-held per-encoding interpretations. Opening an
// already-open path returns the existing shared handle. Entries are
// removed, and disposal callbacks run, on an explicit DisposeBuffer
// call; a path entry whose buffer is no longer live is dropped the
// next time OpenPath looks it up.
//
// Grounded on the teacher's overlay.Manager (internal/renderer/overlay):
// a mutex-guarded map keyed by id, with a parallel slice for ordered
// iteration — here an integer free-list standing in for sortedIDs.
package docreg
