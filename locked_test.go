package vexmem

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocked(t *testing.T) {
	l := NewLocked(nil)
	require.NotNil(t, l)
	assert.Same(t, DefaultHeap, l.res)
}

func TestLockedConcurrentArena(t *testing.T) {
	a := NewArena(make([]byte, 64*1024))
	l := NewLocked(a)
	h := l.Handle()

	var wg sync.WaitGroup
	const numWorkers = 8
	const perWorker = 100

	results := make([][][]byte, numWorkers)
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				b := h.Allocate(16, 1)
				b[0] = byte(id)
				results[id] = append(results[id], b)
			}
		}(w)
	}
	wg.Wait()

	var used int
	l.Do(func(r Resource) { used = r.(*Arena).Len() })
	assert.Equal(t, numWorkers*perWorker*16, used)
	for id, bs := range results {
		for _, b := range bs {
			require.Equal(t, byte(id), b[0], "allocation shared between workers")
		}
	}
}

func TestLockedScannedForwarding(t *testing.T) {
	typ := reflect.TypeFor[[4]string]()
	heap := NewLocked(&Heap{})
	assert.Len(t, heap.AllocateScanned(typ), int(typ.Size()))

	arena := NewLocked(NewArena(make([]byte, 64)))
	assert.Nil(t, arena.AllocateScanned(typ))
}

func TestLockedDoReset(t *testing.T) {
	l := NewLocked(NewArena(make([]byte, 64)))
	l.Allocate(32, 1)
	l.Do(func(r Resource) { r.(*Arena).Reset() })
	l.Do(func(r Resource) { assert.Zero(t, r.(*Arena).Len()) })
	l.Free(nil)
}
