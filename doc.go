// Package vexmem implements a pluggable allocator hierarchy for game and ECS
// data structures.
//
// # Overview
//
// Every allocator is a Resource that knows how to Allocate raw bytes with a
// given alignment and how to Free them. Containers never talk to a resource
// directly; they embed an Allocator handle, a small value whose zero form
// falls back to the Go heap:
//
//	var a vexmem.Allocator             // heap
//	b := a.Allocate(256, 16)
//	defer a.Free(b)
//
// # Resources
//
//   - Heap: the Go runtime allocator (DefaultHeap).
//   - Arena: bump allocation over a caller-supplied buffer; strict or lenient.
//   - Inline: an owned fixed buffer that spills to a fallback allocator.
//   - Chain: an arena that links in larger blocks from an outer allocator.
//   - Pages: anonymous memory mapped from the operating system.
//   - Locked: a mutex wrapper for sharing any of the above.
//
// # Failure
//
// Lenient resources return nil when full so the next layer can fall back or
// grow. Strict arenas, a Chain that still cannot serve a request after
// growing, and misuse such as a non power of two alignment are invariant
// violations: they panic with a diagnostic naming file, line and message.
//
// # Garbage collection
//
// Memory handed out as []byte is not scanned by the collector, so values
// holding Go pointers must come from a ScannedResource (the heap). New and
// MakeSlice pick the right path automatically.
//
// # Thread Safety
//
// Nothing here is goroutine-safe except Heap, Pages and the Locked wrapper.
// Share a resource between goroutines only through Locked or by giving each
// worker its own.
package vexmem
