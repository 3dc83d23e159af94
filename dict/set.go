package dict

import (
	"iter"

	"github.com/pavanmanishd/vexmem"
)

// Set is a Dict without values.
type Set[K any] struct {
	d Dict[K, struct{}]
}

// NewSet returns an empty set using DefaultHasher.
func NewSet[K comparable](capacity int, a vexmem.Allocator) *Set[K] {
	return NewSetWithHasher(capacity, a, Hasher[K](NewDefaultHasher[K]()))
}

// NewSetWithHasher returns an empty set using h.
func NewSetWithHasher[K any](capacity int, a vexmem.Allocator, h Hasher[K]) *Set[K] {
	s := &Set[K]{}
	s.d.init(capacity, a, h)
	return s
}

// Insert adds key and reports whether it was absent.
func (s *Set[K]) Insert(key K) bool {
	if s.d.findRec(key) >= 0 {
		return false
	}
	s.d.createRecord(key)
	return true
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool { return s.d.Contains(key) }

// Find returns the stored key equal to key.
func (s *Set[K]) Find(key K) (K, bool) {
	if i := s.d.findRec(key); i >= 0 {
		return s.d.recs[i].key, true
	}
	var zero K
	return zero, false
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool { return s.d.Remove(key) }

// Clear removes every key. Capacity is kept.
func (s *Set[K]) Clear() { s.d.Clear() }

func (s *Set[K]) Len() int { return s.d.Len() }
func (s *Set[K]) Cap() int { return s.d.Cap() }

// All yields every key in slot order.
func (s *Set[K]) All() iter.Seq[K] { return s.d.Keys() }

// Clone returns a deep copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{d: *s.d.Clone()}
}

// Release frees the set's storage. Further use is fatal.
func (s *Set[K]) Release() { s.d.Release() }
