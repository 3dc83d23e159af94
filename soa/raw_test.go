package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawBufferCopyTo(t *testing.T) {
	tests := []struct {
		name string
		src  []int
		dst  int
		want []int
	}{
		{"same length", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"shorter destination", []int{1, 2, 3}, 2, []int{1, 2}},
		{"longer destination", []int{1, 2}, 4, []int{1, 2, 0, 0}},
		{"empty source", nil, 2, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make(RawBuffer[int], tt.dst)
			n := RawBuffer[int](tt.src).CopyTo(dst)
			assert.Equal(t, min(len(tt.src), tt.dst), n)
			assert.Equal(t, tt.want, []int(dst))
		})
	}
}

func TestRawBufferCopyToFill(t *testing.T) {
	src := RawBuffer[int32]{4, 5}
	dst := RawBuffer[int32]{9, 9, 9, 9, 9}
	n := src.CopyToFill(dst, -1)
	assert.Equal(t, 2, n)
	assert.Equal(t, RawBuffer[int32]{4, 5, -1, -1, -1}, dst)

	// nothing past the copied prefix when dst is shorter
	short := RawBuffer[int32]{0}
	src.CopyToFill(short, -1)
	assert.Equal(t, RawBuffer[int32]{4}, short)
}

func TestRawBufferAccess(t *testing.T) {
	b := make(RawBuffer[uint16], 4)
	b.Fill(7)
	*b.At(2) = 3
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, RawBuffer[uint16]{7, 7, 3, 7}, b)
}
