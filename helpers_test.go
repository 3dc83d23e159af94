package vexmem

import (
	"testing"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// countingResource wraps a heap and records Free calls.
type countingResource struct {
	Heap
	freed [][]byte
}

func (c *countingResource) Free(b []byte) {
	c.freed = append(c.freed, b)
	c.Heap.Free(b)
}

// stingyResource returns blocks of a fixed size regardless of the request.
type stingyResource struct {
	size int
}

func (s stingyResource) Allocate(int, int) []byte { return make([]byte, s.size) }
func (s stingyResource) Free([]byte)              {}

// nilResource never serves anything.
type nilResource struct{}

func (nilResource) Allocate(int, int) []byte { return nil }
func (nilResource) Free([]byte)              {}

// quietViolations silences the violation log for the duration of the test.
func quietViolations(t *testing.T) {
	t.Helper()
	prev := check.SetHook(func(*check.Violation) {})
	t.Cleanup(func() { check.SetHook(prev) })
}

// alignedBuffer returns a 64-byte aligned buffer so offsets are predictable.
func alignedBuffer(n int) []byte {
	return DefaultHeap.Allocate(n, 64)
}
