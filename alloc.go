package vexmem

import (
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/vexmem/internal/check"
	"github.com/pavanmanishd/vexmem/internal/typeinfo"
)

// New returns a pointer to a zeroed T allocated through a.
// Returns nil if the resource is exhausted. Types holding Go pointers need a
// ScannedResource; asking any other resource for one is fatal.
func New[T any](a Allocator) *T {
	var zero T
	if typeinfo.HasPointersFor[T]() {
		b := a.AllocateScanned(reflect.TypeFor[T]())
		check.That(b != nil, "vexmem: resource cannot hold values with pointers")
		return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	}
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.Allocate(size, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice allocates n zeroed elements of type T through a.
// Returns nil if n <= 0 or the resource is exhausted.
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	if typeinfo.HasPointersFor[T]() {
		b := a.AllocateScanned(reflect.ArrayOf(n, reflect.TypeFor[T]()))
		check.That(b != nil, "vexmem: resource cannot hold values with pointers")
		return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
	}
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n)
	}
	b := a.Allocate(elemSize*n, int(unsafe.Alignof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Free returns the memory behind p to a.
func Free[T any](a Allocator, p *T) {
	if p == nil || unsafe.Sizeof(*p) == 0 {
		return
	}
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p)))
}

// FreeSlice returns the memory behind s to a. s must have the length it was
// allocated with.
func FreeSlice[T any](a Allocator, s []T) {
	if b := Bytes(s); len(b) > 0 {
		a.Free(b)
	}
}

// Bytes views s as its raw bytes.
func Bytes[T any](s []T) []byte {
	var zero T
	if len(s) == 0 || unsafe.Sizeof(zero) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), int(unsafe.Sizeof(zero))*len(s))
}
