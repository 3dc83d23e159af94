package soa

import (
	"reflect"
	"strconv"

	"github.com/pavanmanishd/vexmem/internal/check"
	"github.com/pavanmanishd/vexmem/internal/typeinfo"
)

// Layout is the placement of several parallel arrays of equal capacity
// inside one allocation.
type Layout struct {
	Capacity int
	Types    []reflect.Type
	Offsets  []int // byte offset of each array, aligned to its element type
	Size     int   // total bytes, rounded up to Align
	Align    int   // largest element alignment
}

// Plan lays out one array of capacity elements per type, in order. Each
// array starts at the running size rounded up to its element alignment.
// The first array always starts at offset 0.
func Plan(capacity int, types ...reflect.Type) Layout {
	check.That(capacity > 0, "soa: invalid capacity")
	check.That(len(types) > 0, "soa: no arrays to lay out")

	l := Layout{
		Capacity: capacity,
		Types:    types,
		Offsets:  make([]int, len(types)),
		Align:    1,
	}
	size := 0
	for i, t := range types {
		align := t.Align()
		size = roundUp(size, align)
		l.Offsets[i] = size
		size += int(t.Size()) * capacity
		l.Align = max(l.Align, align)
	}
	l.Size = roundUp(size, l.Align)
	return l
}

// HasPointers reports whether any of the arrays holds Go pointers, which
// means the region must be allocated as memory the garbage collector scans.
func (l Layout) HasPointers() bool {
	for _, t := range l.Types {
		if typeinfo.HasPointers(t) {
			return true
		}
	}
	return false
}

// structType describes the layout as a Go struct of arrays. reflect lays
// struct fields out with the same rounding rules as Plan, so the offsets
// agree.
func (l Layout) structType() reflect.Type {
	fields := make([]reflect.StructField, len(l.Types))
	for i, t := range l.Types {
		fields[i] = reflect.StructField{
			Name: "Array" + strconv.Itoa(i),
			Type: reflect.ArrayOf(l.Capacity, t),
		}
	}
	return reflect.StructOf(fields)
}

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}
