package vexmem

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

// DefaultHeap is the resource behind zero-value Allocator handles.
var DefaultHeap = &Heap{}

// Heap delegates to the Go runtime allocator. Free drops the caller's claim
// on the memory; the collector reclaims it once unreferenced. Heap is safe
// for concurrent use because the runtime allocator is.
type Heap struct {
	live   atomic.Int64
	allocs atomic.Int64
	frees  atomic.Int64
}

// Allocate returns size zeroed bytes aligned to align, or nil if size <= 0.
func (h *Heap) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	align = normAlign(align)

	var b []byte
	if align <= 8 {
		// word-sized backing is always 8-byte aligned
		words := make([]uint64, (size+7)/8)
		b = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size)
	} else {
		raw := make([]byte, size+align-1)
		pad := padFor(addrOf(raw), align)
		b = raw[pad : pad+size : pad+size]
	}
	h.live.Add(int64(size))
	h.allocs.Add(1)
	return b
}

// AllocateScanned returns zeroed memory laid out as t, visible to the
// garbage collector.
func (h *Heap) AllocateScanned(t reflect.Type) []byte {
	p := reflect.New(t).UnsafePointer()
	size := int(t.Size())
	h.live.Add(int64(size))
	h.allocs.Add(1)
	return unsafe.Slice((*byte)(p), size)
}

// Free releases b.
func (h *Heap) Free(b []byte) {
	if b == nil {
		return
	}
	h.live.Add(-int64(len(b)))
	h.frees.Add(1)
}

// Live returns the number of bytes handed out and not yet freed.
func (h *Heap) Live() int {
	return int(h.live.Load())
}

// Outstanding returns the number of allocations not yet freed.
func (h *Heap) Outstanding() int {
	return int(h.allocs.Load() - h.frees.Load())
}
