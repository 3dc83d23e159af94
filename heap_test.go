package vexmem

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocateAligned(t *testing.T) {
	h := &Heap{}
	for _, align := range []int{0, 1, 2, 8, 16, 64, 256} {
		b := h.Allocate(40, align)
		require.Len(t, b, 40, "align %d", align)
		if align > 0 {
			assert.Zero(t, addrOf(b)%uintptr(align), "align %d", align)
		}
		for _, v := range b {
			require.Zero(t, v)
		}
	}
	assert.Equal(t, 7*40, h.Live())
	assert.Equal(t, 7, h.Outstanding())
}

func TestHeapAllocateNonPositive(t *testing.T) {
	h := &Heap{}
	assert.Nil(t, h.Allocate(0, 8))
	assert.Nil(t, h.Allocate(-4, 8))
	assert.Zero(t, h.Outstanding())
}

func TestHeapFreeAccounting(t *testing.T) {
	h := &Heap{}
	a := h.Allocate(100, 8)
	b := h.Allocate(28, 4)
	h.Free(a)
	assert.Equal(t, 28, h.Live())
	assert.Equal(t, 1, h.Outstanding())
	h.Free(b)
	h.Free(nil)
	assert.Zero(t, h.Live())
	assert.Zero(t, h.Outstanding())
}

func TestHeapAllocateScanned(t *testing.T) {
	type rec struct {
		ID   int
		Name string
	}
	h := &Heap{}
	typ := reflect.ArrayOf(3, reflect.TypeFor[rec]())
	b := h.AllocateScanned(typ)
	require.Len(t, b, int(typ.Size()))

	recs := unsafe.Slice((*rec)(unsafe.Pointer(&b[0])), 3)
	recs[1] = rec{ID: 7, Name: "seven"}
	assert.Equal(t, "seven", recs[1].Name)
	assert.Equal(t, int(typ.Size()), h.Live())
}

func TestHeapMetrics(t *testing.T) {
	h := &Heap{}
	h.Allocate(64, 8)
	m := h.Metrics()
	assert.Equal(t, 64, m.SizeInUse)
	assert.Equal(t, 1, m.NumBlocks)
	assert.Equal(t, 1.0, m.Utilization)
}
