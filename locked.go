package vexmem

import (
	"reflect"
	"sync"
)

// Locked is a mutex-protected wrapper around a Resource for callers that
// share one resource between goroutines. Nothing else in this module locks;
// every operation pays for the mutex.
type Locked struct {
	mu  sync.Mutex
	res Resource
}

// NewLocked wraps r. A nil r wraps DefaultHeap.
func NewLocked(r Resource) *Locked {
	if r == nil {
		r = DefaultHeap
	}
	return &Locked{res: r}
}

// Handle returns an Allocator backed by l.
func (l *Locked) Handle() Allocator {
	return Allocator{res: l}
}

// Allocate thread-safely forwards to the wrapped resource.
func (l *Locked) Allocate(size, align int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.res.Allocate(size, align)
}

// Free thread-safely forwards to the wrapped resource.
func (l *Locked) Free(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.res.Free(b)
}

// AllocateScanned thread-safely forwards to the wrapped resource, returning
// nil when it cannot hand out GC-typed memory.
func (l *Locked) AllocateScanned(t reflect.Type) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.res.(ScannedResource); ok {
		return s.AllocateScanned(t)
	}
	return nil
}

// Do runs fn with the lock held, for resource-specific operations such as
// Reset or Release.
func (l *Locked) Do(fn func(r Resource)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.res)
}
