package soa

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/vexmem"
)

func TestTriple(t *testing.T) {
	h := &vexmem.Heap{}
	tr := NewTriple[int32, ctrlBlock, wideRecord](vexmem.Handle(h), 7)
	require.Equal(t, 7, tr.Cap())
	assert.Equal(t, 7, tr.First().Len())
	assert.Equal(t, 7, tr.Second().Len())
	assert.Equal(t, 7, tr.Third().Len())
	assert.Equal(t, 336, h.Live())

	// the first array is the start of the allocation
	assert.Equal(t, unsafe.Pointer(unsafe.SliceData(tr.s.Bytes())), unsafe.Pointer(tr.First().At(0)))

	tr.First().Fill(-1)
	tr.Second().Fill(ctrlBlock{next: -1})
	tr.Third()[6] = wideRecord{key: 6, value: [3]int64{1, 2, 3}}
	assert.Equal(t, int32(-1), tr.First()[3])
	assert.Equal(t, int64(6), tr.Third().At(6).key)

	assert.Equal(t, vexmem.Handle(h), tr.Allocator())
	tr.Free()
	assert.Zero(t, h.Live())
	assert.Nil(t, tr.First())
}

func TestTripleGrowCopy(t *testing.T) {
	a := vexmem.NewArena(make([]byte, 4096))
	small := NewTriple[int32, ctrlBlock, int64](a.Handle(), 3)
	small.Second().Fill(ctrlBlock{hash: 9, used: true})

	big := NewTriple[int32, ctrlBlock, int64](a.Handle(), 7)
	small.Second().CopyToFill(big.Second(), ctrlBlock{next: -1})
	for i := 0; i < 3; i++ {
		assert.True(t, big.Second()[i].used)
	}
	for i := 3; i < 7; i++ {
		assert.Equal(t, ctrlBlock{next: -1}, big.Second()[i])
	}
}
