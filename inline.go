package vexmem

// Inline is an arena over a fixed buffer it owns, with a fallback allocator
// for requests that no longer fit. The zero fallback is the heap.
type Inline struct {
	buf      []byte
	arena    Arena
	fallback Allocator
	spilled  int
}

// NewInline returns an Inline resource with a size-byte buffer.
func NewInline(size int, fallback Allocator) *Inline {
	in := &Inline{
		buf:      make([]byte, size),
		fallback: fallback,
	}
	in.arena = Arena{buf: in.buf}
	return in
}

// Handle returns an Allocator backed by in.
func (in *Inline) Handle() Allocator {
	return Allocator{res: in}
}

// Allocate serves from the inline buffer first and from the fallback once
// the buffer is exhausted.
func (in *Inline) Allocate(size, align int) []byte {
	if b := in.arena.Allocate(size, align); b != nil {
		return b
	}
	b := in.fallback.Allocate(size, align)
	if b != nil {
		in.spilled++
	}
	return b
}

// Free ignores slices inside the inline buffer and forwards the rest.
func (in *Inline) Free(b []byte) {
	if b == nil || in.arena.Owns(b) {
		return
	}
	in.fallback.Free(b)
}

// Reset rewinds the inline buffer. Fallback allocations are unaffected.
func (in *Inline) Reset() {
	in.arena.Reset()
}

// Owns reports whether b lives in the inline buffer.
func (in *Inline) Owns(b []byte) bool {
	return in.arena.Owns(b)
}

// Spilled returns how many allocations were served by the fallback.
func (in *Inline) Spilled() int {
	return in.spilled
}
