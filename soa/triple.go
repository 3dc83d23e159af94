package soa

import (
	"reflect"

	"github.com/pavanmanishd/vexmem"
)

// Triple is a Storage of exactly three arrays with typed views cached.
// The first array starts at the base of the allocation. A hash table keeps
// its buckets, control blocks and records in one.
type Triple[A, B, C any] struct {
	s      Storage
	first  RawBuffer[A]
	second RawBuffer[B]
	third  RawBuffer[C]
}

// NewTriple allocates the three arrays of capacity elements each.
func NewTriple[A, B, C any](a vexmem.Allocator, capacity int) Triple[A, B, C] {
	s := NewStorage(a, capacity, reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
	return Triple[A, B, C]{
		s:      s,
		first:  Array[A](s, 0),
		second: Array[B](s, 1),
		third:  Array[C](s, 2),
	}
}

func (t *Triple[A, B, C]) First() RawBuffer[A]  { return t.first }
func (t *Triple[A, B, C]) Second() RawBuffer[B] { return t.second }
func (t *Triple[A, B, C]) Third() RawBuffer[C]  { return t.third }

// Cap returns the element capacity of each array.
func (t *Triple[A, B, C]) Cap() int { return len(t.first) }

// Allocator returns the handle the region came from.
func (t *Triple[A, B, C]) Allocator() vexmem.Allocator { return t.s.Allocator() }

// Free releases the region and drops the views.
func (t *Triple[A, B, C]) Free() {
	t.s.Free()
	t.first, t.second, t.third = nil, nil, nil
}
