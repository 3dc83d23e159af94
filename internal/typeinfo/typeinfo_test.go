package typeinfo

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type flat struct {
	A int64
	B [4]uint16
	C struct{ D float32 }
}

type withString struct {
	ID   int
	Name string
}

func TestHasPointers(t *testing.T) {
	assert.False(t, HasPointersFor[int]())
	assert.False(t, HasPointersFor[flat]())
	assert.False(t, HasPointersFor[[0]*int]())
	assert.False(t, HasPointersFor[struct{}]())

	assert.True(t, HasPointersFor[string]())
	assert.True(t, HasPointersFor[*int]())
	assert.True(t, HasPointersFor[[]byte]())
	assert.True(t, HasPointersFor[map[int]int]())
	assert.True(t, HasPointersFor[any]())
	assert.True(t, HasPointersFor[unsafe.Pointer]())
	assert.True(t, HasPointersFor[withString]())
	assert.True(t, HasPointersFor[[2]withString]())
	assert.True(t, HasPointersFor[func()]())
}
