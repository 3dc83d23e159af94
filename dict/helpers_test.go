package dict

import (
	"testing"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// quietViolations silences the violation log for the duration of the test.
func quietViolations(t *testing.T) {
	t.Helper()
	prev := check.SetHook(func(*check.Violation) {})
	t.Cleanup(func() { check.SetHook(prev) })
}

// constHasher sends every key to the same chain with the same hash.
type constHasher struct{ h uint32 }

func (c constHasher) Hash(int) uint32     { return c.h }
func (constHasher) Equal(a, b int) bool { return a == b }

func newIntDict(capacity int) *Dict[int, int] {
	return NewWithHasher[int, int](capacity, vexmemHeap(), IntHasher[int]{})
}
