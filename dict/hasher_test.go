package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV1a(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0x811c9dc5},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
	}
	var h FNV1a
	for _, tt := range tests {
		if got := h.Hash(tt.in); got != tt.want {
			t.Errorf("FNV1a.Hash(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
	assert.True(t, h.Equal("x", "x"))
	assert.False(t, h.Equal("x", "y"))
}

func TestIntHasherIdentity(t *testing.T) {
	var h IntHasher[int]
	for _, k := range []int{0, 1, 4, 1000} {
		assert.Equal(t, uint32(k), h.Hash(k))
	}
	var u IntHasher[uint64]
	assert.Equal(t, uint32(1), u.Hash(1<<32|0))
}

func TestDefaultHasher(t *testing.T) {
	type key struct {
		a int
		b string
	}
	h := NewDefaultHasher[key]()
	copied := h
	assert.Equal(t, h.Hash(key{1, "x"}), h.Hash(key{1, "x"}))
	assert.Equal(t, h.Hash(key{1, "x"}), copied.Hash(key{1, "x"}), "copies share the seed")
	assert.True(t, h.Equal(key{2, "y"}, key{2, "y"}))
	assert.False(t, h.Equal(key{2, "y"}, key{3, "y"}))
}
