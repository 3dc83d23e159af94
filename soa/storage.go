package soa

import (
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/vexmem"
	"github.com/pavanmanishd/vexmem/internal/check"
)

// Storage is a set of parallel arrays carved out of a single allocation and
// freed as a unit. It owns the bytes, not the elements: constructing and
// destroying elements is the caller's job. The memory is zeroed on creation.
type Storage struct {
	alloc  vexmem.Allocator
	layout Layout
	mem    []byte
}

// NewStorage allocates one region holding an array of capacity elements for
// each type. If any type holds Go pointers the region is requested from the
// handle's ScannedResource. Failing to obtain the region, or getting one too
// small for the arrays, is fatal.
func NewStorage(a vexmem.Allocator, capacity int, types ...reflect.Type) Storage {
	l := Plan(capacity, types...)
	s := Storage{alloc: a, layout: l}

	if l.HasPointers() {
		st := l.structType()
		for i := range l.Types {
			check.That(int(st.Field(i).Offset) == l.Offsets[i], "soa: array offsets disagree with the scanned layout")
		}
		s.mem = a.AllocateScanned(st)
		check.That(s.mem != nil, "soa: resource cannot hold arrays with pointers")
	} else {
		s.mem = a.Allocate(l.Size, l.Align)
		check.That(s.mem != nil, "soa: failure of allocator")
		clear(s.mem)
	}
	check.That(len(s.mem) >= l.Size, "soa: buffer could not contain all of the arrays")
	return s
}

// Array returns a view of array i. T must be the type the array was planned
// with.
func Array[T any](s Storage, i int) RawBuffer[T] {
	check.That(s.mem != nil, "soa: use of freed storage")
	check.That(i >= 0 && i < len(s.layout.Types), "soa: array index out of range")
	check.That(reflect.TypeFor[T]() == s.layout.Types[i], "soa: invalid type when accessing sub array")

	base := unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.mem)), s.layout.Offsets[i])
	return unsafe.Slice((*T)(base), s.layout.Capacity)
}

// Cap returns the element capacity shared by every array.
func (s Storage) Cap() int { return s.layout.Capacity }

// Layout returns the placement of the arrays.
func (s Storage) Layout() Layout { return s.layout }

// Allocator returns the handle the region was allocated from.
func (s Storage) Allocator() vexmem.Allocator { return s.alloc }

// Bytes returns the whole region.
func (s Storage) Bytes() []byte { return s.mem }

// Free returns the region to its allocator. Elements are not destroyed.
func (s *Storage) Free() {
	if s.mem == nil {
		return
	}
	s.alloc.Free(s.mem)
	s.mem = nil
}
