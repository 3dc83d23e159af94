package vexmem

import (
	"unsafe"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// Arena is a bump allocator over a caller-supplied buffer. It does not own
// the buffer. Allocations advance a single offset; Free is a no-op and memory
// comes back only through Reset. Not goroutine-safe.
type Arena struct {
	buf    []byte
	top    int
	strict bool
}

// NewArena returns a lenient arena over buf: Allocate returns nil once the
// buffer is exhausted so the caller can fall back or grow.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// NewStrictArena returns an arena over buf that treats exhaustion as a fatal
// invariant violation.
func NewStrictArena(buf []byte) *Arena {
	return &Arena{buf: buf, strict: true}
}

// Handle returns an Allocator backed by the arena.
func (a *Arena) Handle() Allocator {
	return Allocator{res: a}
}

// Allocate carves size bytes aligned to align from the buffer.
// Returns nil if size <= 0 or the request does not fit.
func (a *Arena) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	align = normAlign(align)

	// Align against the real address so the result is aligned even when the
	// buffer itself is not.
	pad := padFor(addrOf(a.buf)+uintptr(a.top), align)
	start := a.top + pad
	end := start + size
	if end > len(a.buf) || end < start {
		if a.strict {
			check.Failf("arena: out of memory (need %d bytes, %d of %d used)", size+pad, a.top, len(a.buf))
		}
		return nil
	}
	a.top = end
	// Use unsafe slice creation to avoid bounds checks
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.buf[start])), size)
}

// Free is a no-op; arena memory is reclaimed in bulk.
func (a *Arena) Free([]byte) {}

// Reset moves the offset back to the start of the buffer, invalidating every
// allocation at once. Nothing may still reference arena memory.
func (a *Arena) Reset() {
	a.top = 0
}

// Len returns the number of bytes consumed, including alignment padding.
func (a *Arena) Len() int { return a.top }

// Cap returns the size of the underlying buffer.
func (a *Arena) Cap() int { return len(a.buf) }

// Remaining returns the bytes left after the current offset.
func (a *Arena) Remaining() int { return len(a.buf) - a.top }

// Owns reports whether b starts inside the arena's buffer. The test is a
// plain address-range check, valid because the Go heap never moves objects
// and arenas never relocate their buffer.
func (a *Arena) Owns(b []byte) bool {
	if len(a.buf) == 0 || b == nil {
		return false
	}
	base := addrOf(a.buf)
	p := addrOf(b)
	return p >= base && p < base+uintptr(len(a.buf))
}

// rebase points the arena at a new buffer with top bytes already consumed.
func (a *Arena) rebase(buf []byte, top int) {
	a.buf = buf
	a.top = top
}
