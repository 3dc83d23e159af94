package vexmem

import (
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// Resource hands out raw memory. Allocate returns exactly size bytes whose
// first byte is aligned to align (a power of two, 0 meaning 1), or nil when
// the request cannot be served. Free accepts a slice previously returned by
// Allocate on the same resource, or nil.
//
// Memory from a Resource is not scanned by the garbage collector: it must not
// be the only place a Go pointer is stored. See ScannedResource.
type Resource interface {
	Allocate(size, align int) []byte
	Free(b []byte)
}

// ScannedResource is implemented by resources that can hand out memory typed
// for the garbage collector, suitable for values that hold Go pointers.
// AllocateScanned returns a zeroed region of t.Size() bytes laid out as t, or
// nil when unsupported.
type ScannedResource interface {
	Resource
	AllocateScanned(t reflect.Type) []byte
}

// Allocator is a handle to a Resource. The zero value allocates from
// DefaultHeap. Structures embed the handle by value; they never own the
// resource behind it.
type Allocator struct {
	res Resource
}

// Handle wraps r in an Allocator. A nil r yields the heap-backed zero handle.
func Handle(r Resource) Allocator {
	return Allocator{res: r}
}

// Resource returns the resource the handle resolves to.
func (a Allocator) Resource() Resource {
	if a.res == nil {
		return DefaultHeap
	}
	return a.res
}

// IsHeap reports whether the handle resolves to the Go heap.
func (a Allocator) IsHeap() bool {
	_, ok := a.Resource().(*Heap)
	return ok
}

// Allocate requests size bytes aligned to align. It returns nil on failure.
func (a Allocator) Allocate(size, align int) []byte {
	return a.Resource().Allocate(size, align)
}

// Free returns b to the resource. Free(nil) is a no-op.
func (a Allocator) Free(b []byte) {
	if b == nil {
		return
	}
	a.Resource().Free(b)
}

// AllocateScanned requests GC-typed memory for t. It returns nil if the
// resource cannot provide it.
func (a Allocator) AllocateScanned(t reflect.Type) []byte {
	if s, ok := a.Resource().(ScannedResource); ok {
		return s.AllocateScanned(t)
	}
	return nil
}

// normAlign validates align and maps 0 to 1.
func normAlign(align int) int {
	if align <= 0 {
		return 1
	}
	check.That(align&(align-1) == 0, "alignment must be a power of two")
	return align
}

// padFor returns the number of bytes needed to move p up to a multiple of align.
func padFor(p uintptr, align int) int {
	return int(-p & uintptr(align-1))
}

func addrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// alignUp rounds n up to a multiple of align (a power of two).
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
