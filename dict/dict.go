package dict

import (
	"math"

	"github.com/pavanmanishd/vexmem"
	"github.com/pavanmanishd/vexmem/internal/check"
	"github.com/pavanmanishd/vexmem/soa"
)

// DefaultCapacity is the capacity of a table a move leaves behind.
const DefaultCapacity = 7

const maxCapacity = math.MaxInt32

// ctrl is the per-slot metadata. A used slot is linked into its bucket's
// chain through next; a free slot is linked into the free list through next.
type ctrl struct {
	hash uint32
	next int32
	used bool
}

var emptyCtrl = ctrl{next: -1}

type record[K, V any] struct {
	key   K
	value V
}

// Pair is a key and its value, used to build a table from a list.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Dict is an open-chaining hash table. Its buckets, control blocks and
// records are three parallel arrays in a single allocation from the table's
// allocator. Records are stored by value at stable indices until the table
// grows; pointers returned by Find, Entry and EmplaceAndGet are valid until
// the next insertion or removal.
//
// A Dict must be created with New, NewWithHasher or Of. It is not safe for
// concurrent use.
type Dict[K, V any] struct {
	data    soa.Triple[int32, ctrl, record[K, V]]
	buckets soa.RawBuffer[int32]
	blocks  soa.RawBuffer[ctrl]
	recs    soa.RawBuffer[record[K, V]]
	hasher  Hasher[K]

	capacity  uint32
	fastM     uint64
	top       int32 // end of the used index range
	freeIdx   int32 // head of the free list
	freeCount int32
}

// New returns an empty table able to hold at least capacity records before
// growing, using DefaultHasher. A capacity <= 0 is fatal.
func New[K comparable, V any](capacity int, a vexmem.Allocator) *Dict[K, V] {
	return NewWithHasher[K, V](capacity, a, NewDefaultHasher[K]())
}

// NewWithHasher is like New with a caller-supplied hasher.
func NewWithHasher[K, V any](capacity int, a vexmem.Allocator, h Hasher[K]) *Dict[K, V] {
	d := &Dict[K, V]{}
	d.init(capacity, a, h)
	return d
}

// Of returns a table holding pairs. Later duplicates overwrite earlier ones.
func Of[K comparable, V any](a vexmem.Allocator, pairs ...Pair[K, V]) *Dict[K, V] {
	d := New[K, V](max(len(pairs), 1), a)
	for _, p := range pairs {
		d.Emplace(p.Key, p.Value)
	}
	return d
}

func (d *Dict[K, V]) init(capacity int, a vexmem.Allocator, h Hasher[K]) {
	check.That(capacity > 0, "dict: invalid capacity")
	check.That(h != nil, "dict: nil hasher")
	n := ClosestPrime(capacity)
	check.That(n <= maxCapacity, "dict: capacity out of range")

	d.hasher = h
	d.bind(soa.NewTriple[int32, ctrl, record[K, V]](a, n))
	d.buckets.Fill(-1)
	d.blocks.Fill(emptyCtrl)
	d.top, d.freeIdx, d.freeCount = 0, -1, 0
}

// bind makes t the table's storage and refreshes the cached views and the
// fast modulo constant.
func (d *Dict[K, V]) bind(t soa.Triple[int32, ctrl, record[K, V]]) {
	d.data = t
	d.buckets = t.First()
	d.blocks = t.Second()
	d.recs = t.Third()
	d.capacity = uint32(t.Cap())
	d.fastM = fastmodM(d.capacity)
}

func (d *Dict[K, V]) mod(h uint32) uint32 {
	return fastmod(h, d.fastM, d.capacity)
}

func (d *Dict[K, V]) alive() {
	if d.capacity == 0 {
		check.Failf("dict: use of a released or uninitialized table")
	}
}

// Len returns the number of records.
func (d *Dict[K, V]) Len() int { return int(d.top - d.freeCount) }

// Cap returns the number of slots. It is always prime.
func (d *Dict[K, V]) Cap() int { return int(d.capacity) }

// Allocator returns the handle the table allocates from.
func (d *Dict[K, V]) Allocator() vexmem.Allocator { return d.data.Allocator() }

// Hasher returns the table's hasher.
func (d *Dict[K, V]) Hasher() Hasher[K] { return d.hasher }

func (d *Dict[K, V]) findRec(key K) int32 {
	d.alive()
	h := d.hasher.Hash(key)
	for i := d.buckets[d.mod(h)]; i >= 0; i = d.blocks[i].next {
		if d.blocks[i].hash == h && d.hasher.Equal(d.recs[i].key, key) {
			return i
		}
	}
	return -1
}

// Find returns a pointer to the value stored under key, or nil.
func (d *Dict[K, V]) Find(key K) *V {
	if i := d.findRec(key); i >= 0 {
		return &d.recs[i].value
	}
	return nil
}

// Get returns the value stored under key and whether it was present.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if i := d.findRec(key); i >= 0 {
		return d.recs[i].value, true
	}
	var zero V
	return zero, false
}

// ValueOr returns the value stored under key, or def.
func (d *Dict[K, V]) ValueOr(key K, def V) V {
	if i := d.findRec(key); i >= 0 {
		return d.recs[i].value
	}
	return def
}

// Contains reports whether key is present.
func (d *Dict[K, V]) Contains(key K) bool {
	return d.findRec(key) >= 0
}

// FindByHash returns the first value in h's chain whose stored hash is h,
// without comparing keys. Useful when the key is known only by its hash.
func (d *Dict[K, V]) FindByHash(h uint32) *V {
	d.alive()
	for i := d.buckets[d.mod(h)]; i >= 0; i = d.blocks[i].next {
		if d.blocks[i].hash == h {
			return &d.recs[i].value
		}
	}
	return nil
}

// Emplace stores value under key, replacing any previous value.
func (d *Dict[K, V]) Emplace(key K, value V) {
	d.EmplaceAndGet(key, value)
}

// EmplaceAndGet stores value under key and returns a pointer to the stored
// value.
func (d *Dict[K, V]) EmplaceAndGet(key K, value V) *V {
	i := d.findRec(key)
	if i < 0 {
		i = d.createRecord(key)
	}
	d.recs[i].value = value
	return &d.recs[i].value
}

// Entry returns a pointer to the value stored under key, inserting a zero
// value first if key is absent.
func (d *Dict[K, V]) Entry(key K) *V {
	i := d.findRec(key)
	if i < 0 {
		i = d.createRecord(key)
	}
	return &d.recs[i].value
}

// createRecord claims a slot for key, from the free list if possible,
// growing the table when every slot up to capacity is in use. The new slot
// goes to the front of its bucket's chain. Its value is zero.
func (d *Dict[K, V]) createRecord(key K) int32 {
	h := d.hasher.Hash(key)
	var i int32
	if d.freeCount > 0 {
		i = d.freeIdx
		d.freeIdx = d.blocks[i].next
		d.freeCount--
	} else {
		if uint32(d.top) == d.capacity {
			d.grow()
		}
		i = d.top
		d.top++
	}

	bucket := d.mod(h)
	d.blocks[i] = ctrl{hash: h, next: d.buckets[bucket], used: true}
	d.buckets[bucket] = i
	d.recs[i].key = key
	return i
}

// Remove deletes key and reports whether it was present. The slot joins the
// free list.
func (d *Dict[K, V]) Remove(key K) bool {
	d.alive()
	h := d.hasher.Hash(key)
	bucket := d.mod(h)
	prev := int32(-1)
	for i := d.buckets[bucket]; i >= 0; prev, i = i, d.blocks[i].next {
		if d.blocks[i].hash != h || !d.hasher.Equal(d.recs[i].key, key) {
			continue
		}
		if prev < 0 {
			d.buckets[bucket] = d.blocks[i].next
		} else {
			d.blocks[prev].next = d.blocks[i].next
		}
		d.recs[i] = record[K, V]{}
		d.blocks[i] = ctrl{next: d.freeIdx}
		d.freeIdx = i
		d.freeCount++
		return true
	}
	return false
}

// Clear removes every record. Capacity is kept.
func (d *Dict[K, V]) Clear() {
	d.alive()
	if d.top == 0 {
		return
	}
	clear(d.recs[:d.top])
	d.buckets.Fill(-1)
	d.blocks.Fill(emptyCtrl)
	d.top, d.freeIdx, d.freeCount = 0, -1, 0
}

// grow moves every record to storage about 1.5 times larger and rebuilds
// the chains from the stored hashes. Record indices are preserved.
func (d *Dict[K, V]) grow() {
	old := d.capacity
	n := ClosestPrime(int(old) + int(old)/2 + 1)
	check.That(n > int(old) && n <= maxCapacity, "dict: max number of elements reached")

	next := soa.NewTriple[int32, ctrl, record[K, V]](d.data.Allocator(), n)
	recs := next.Third()
	for i := int32(0); i < d.top; i++ {
		if d.blocks[i].used {
			recs[i] = d.recs[i]
			d.recs[i] = record[K, V]{}
		}
	}
	d.blocks.CopyToFill(next.Second(), emptyCtrl)

	d.data.Free()
	d.bind(next)

	d.buckets.Fill(-1)
	for i := int32(0); i < d.top; i++ {
		if b := &d.blocks[i]; b.used {
			bucket := d.mod(b.hash)
			b.next = d.buckets[bucket]
			d.buckets[bucket] = i
		}
	}
}

// Clone returns a deep copy of d with the same capacity, allocator and
// hasher. Slot indices, including the free list, are preserved. Values are
// copied by assignment.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	d.alive()
	c := &Dict[K, V]{hasher: d.hasher}
	c.bind(soa.NewTriple[int32, ctrl, record[K, V]](d.data.Allocator(), int(d.capacity)))
	d.buckets.CopyTo(c.buckets)
	d.blocks.CopyTo(c.blocks)
	d.recs.CopyTo(c.recs)
	c.top, c.freeIdx, c.freeCount = d.top, d.freeIdx, d.freeCount
	return c
}

// MoveFrom releases d's contents and takes over src's storage and records.
// src is left as an empty table of DefaultCapacity on the same allocator and
// hasher.
func (d *Dict[K, V]) MoveFrom(src *Dict[K, V]) {
	if d == src {
		return
	}
	src.alive()
	d.Release()

	*d = *src
	*src = Dict[K, V]{}
	src.init(DefaultCapacity, d.data.Allocator(), d.hasher)
}

// Release destroys every record and returns the storage to the allocator.
// Any further use of d other than MoveFrom is fatal.
func (d *Dict[K, V]) Release() {
	if d.capacity == 0 {
		return
	}
	clear(d.recs[:d.top])
	d.data.Free()
	hasher := d.hasher
	*d = Dict[K, V]{hasher: hasher}
}
