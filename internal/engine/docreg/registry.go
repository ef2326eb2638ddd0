package docreg

import (
	"errors"
	"sync"
	"weak"

	"github.com/dshills/keystorm-core/internal/engine/interp"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

// ErrPathConflict is returned by Rename when newPath already maps to
// a different live buffer (spec.md 7's "registry conflicts": "saving
// an unnamed buffer under a path that already maps to another buffer
// — logged; no automatic merge").
var ErrPathConflict = errors.New("docreg: path already maps to another buffer")

// ErrBufferNotRegistered is returned when an interpretation is
// requested for a buffer the registry did not construct.
var ErrBufferNotRegistered = errors.New("docreg: buffer not registered")

type bufferEntry struct {
	ref     weak.Pointer[textbuf.Buffer]
	path    string // "" for unnamed
	id      int    // valid only when path == ""
	interps map[string]weak.Pointer[interp.Interpretation]
}

// Registry is spec.md 4.10's single process-wide buffer/interpretation
// registry.
type Registry struct {
	mu sync.Mutex

	byPath   map[string]*bufferEntry
	byBuffer map[*textbuf.Buffer]*bufferEntry
	unnamed  []*bufferEntry
	freeIDs  []int

	onCreated   []func(b *textbuf.Buffer)
	onDisposing []func(b *textbuf.Buffer)
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byPath:   make(map[string]*bufferEntry),
		byBuffer: make(map[*textbuf.Buffer]*bufferEntry),
	}
}

// OnBufferCreated registers an observer for buffer_created events.
func (r *Registry) OnBufferCreated(fn func(b *textbuf.Buffer)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onCreated = append(r.onCreated, fn)
}

// OnBufferDisposing registers an observer for buffer_disposing events.
func (r *Registry) OnBufferDisposing(fn func(b *textbuf.Buffer)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDisposing = append(r.onDisposing, fn)
}

// OpenPath returns the buffer already registered for path, or
// constructs one with load and registers it (spec.md 4.10: "opening
// an already-opened path returns the existing shared handle; opening
// a new path constructs a buffer and publishes a buffer_created
// event").
func (r *Registry) OpenPath(path string, load func() (*textbuf.Buffer, error)) (*textbuf.Buffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.byPath[path]; ok {
		if b := e.ref.Value(); b != nil {
			return b, nil
		}
		delete(r.byPath, path) // stale weak ref; fall through to reconstruct
	}

	b, err := load()
	if err != nil {
		return nil, err
	}
	e := &bufferEntry{ref: weak.Make(b), path: path, interps: make(map[string]weak.Pointer[interp.Interpretation])}
	r.byPath[path] = e
	r.byBuffer[b] = e
	r.fireCreated(b)
	return b, nil
}

// NewUnnamed allocates a fresh id (reusing a disposed one when
// available) and constructs a buffer for it via load.
func (r *Registry) NewUnnamed(load func(id int) (*textbuf.Buffer, error)) (*textbuf.Buffer, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
	} else {
		id = len(r.unnamed)
		r.unnamed = append(r.unnamed, nil)
	}

	b, err := load(id)
	if err != nil {
		r.freeIDs = append(r.freeIDs, id)
		return nil, 0, err
	}
	e := &bufferEntry{ref: weak.Make(b), id: id, interps: make(map[string]weak.Pointer[interp.Interpretation])}
	r.unnamed[id] = e
	r.byBuffer[b] = e
	r.fireCreated(b)
	return b, id, nil
}

// Rename re-keys a buffer's canonical path on save-as (SPEC_FULL.md's
// supplemented feature, grounded on codepad's buffer_manager): moves
// the path -> handle entry, leaves encoding sub-registrations intact.
func (r *Registry) Rename(b *textbuf.Buffer, newPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byBuffer[b]
	if !ok {
		return ErrBufferNotRegistered
	}
	if existing, ok := r.byPath[newPath]; ok && existing != e {
		if live := existing.ref.Value(); live != nil && live != b {
			return ErrPathConflict
		}
	}
	if e.path != "" {
		delete(r.byPath, e.path)
	} else {
		r.unnamed[e.id] = nil
		r.freeIDs = append(r.freeIDs, e.id)
	}
	e.path = newPath
	e.id = 0
	r.byPath[newPath] = e
	return nil
}

// DisposeBuffer removes b's registration and fires buffer_disposing.
func (r *Registry) DisposeBuffer(b *textbuf.Buffer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byBuffer[b]
	if !ok {
		return
	}
	delete(r.byBuffer, b)
	if e.path != "" {
		delete(r.byPath, e.path)
	} else {
		r.unnamed[e.id] = nil
		r.freeIDs = append(r.freeIDs, e.id)
	}
	for _, fn := range r.onDisposing {
		fn(b)
	}
}

// OpenInterpretation returns b's interpretation under encodingName,
// constructing one with make if none is live.
func (r *Registry) OpenInterpretation(b *textbuf.Buffer, encodingName string, make_ func() (*interp.Interpretation, error)) (*interp.Interpretation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byBuffer[b]
	if !ok {
		return nil, ErrBufferNotRegistered
	}
	if ref, ok := e.interps[encodingName]; ok {
		if it := ref.Value(); it != nil {
			return it, nil
		}
	}
	it, err := make_()
	if err != nil {
		return nil, err
	}
	e.interps[encodingName] = weak.Make(it)
	return it, nil
}

// Lookup returns the buffer registered for path, if one is live.
func (r *Registry) Lookup(path string) (*textbuf.Buffer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byPath[path]
	if !ok {
		return nil, false
	}
	b := e.ref.Value()
	return b, b != nil
}

func (r *Registry) fireCreated(b *textbuf.Buffer) {
	for _, fn := range r.onCreated {
		fn(b)
	}
}
