package textbuf

// MaxChunkBytes is the maximum length of an owned byte chunk
// (spec.md 3.1, default 4096).
const MaxChunkBytes = 4096

// Chunk is an owned byte array of length <= MaxChunkBytes. Chunks
// are treated as immutable once stored in the tree: every mutation
// that touches a chunk's bytes produces a new Chunk value rather
// than editing in place, mirroring the teacher's rope.Chunk.
type Chunk struct {
	data []byte
}

// NewChunk wraps data as a chunk. The caller must not mutate data
// afterwards.
func NewChunk(data []byte) Chunk { return Chunk{data: data} }

// Len returns the chunk's byte length.
func (c Chunk) Len() int { return len(c.data) }

// Bytes returns the chunk's underlying bytes. Callers must not mutate
// the returned slice.
func (c Chunk) Bytes() []byte { return c.data }

// Split divides the chunk at byte offset into two chunks.
func (c Chunk) Split(offset int) (Chunk, Chunk) {
	left := append([]byte(nil), c.data[:offset]...)
	right := append([]byte(nil), c.data[offset:]...)
	return Chunk{data: left}, Chunk{data: right}
}

// splitIntoChunks divides data into chunks of at most MaxChunkBytes bytes.
func splitIntoChunks(data []byte) []Chunk {
	if len(data) == 0 {
		return nil
	}
	var chunks []Chunk
	for len(data) > 0 {
		n := len(data)
		if n > MaxChunkBytes {
			n = MaxChunkBytes
		}
		piece := append([]byte(nil), data[:n]...)
		chunks = append(chunks, Chunk{data: piece})
		data = data[n:]
	}
	return chunks
}
