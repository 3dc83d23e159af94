package dict

import "hash/maphash"

// Hasher hashes and compares keys. Equal keys must hash alike.
type Hasher[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// DefaultHasher hashes any comparable key with hash/maphash under a seed
// chosen when the hasher is created. Copies share the seed, so a cloned
// table keeps its chains valid.
type DefaultHasher[K comparable] struct {
	seed maphash.Seed
}

// NewDefaultHasher returns a hasher with a fresh random seed.
func NewDefaultHasher[K comparable]() DefaultHasher[K] {
	return DefaultHasher[K]{seed: maphash.MakeSeed()}
}

func (h DefaultHasher[K]) Hash(key K) uint32 {
	x := maphash.Comparable(h.seed, key)
	return uint32(x) ^ uint32(x>>32)
}

func (DefaultHasher[K]) Equal(a, b K) bool { return a == b }

// Integer is the set of key types IntHasher accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher uses the integer itself as its hash. Cheap and good enough for
// dense ids such as entity or component indices.
type IntHasher[K Integer] struct{}

func (IntHasher[K]) Hash(key K) uint32 {
	x := uint64(key)
	return uint32(x) ^ uint32(x>>32)
}

func (IntHasher[K]) Equal(a, b K) bool { return a == b }

// FNV1a hashes strings with 32-bit FNV-1a.
type FNV1a struct{}

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

func (FNV1a) Hash(key string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= fnvPrime32
	}
	return h
}

func (FNV1a) Equal(a, b string) bool { return a == b }
