// Package dict implements an open-chaining hash table whose buckets,
// per-slot control blocks and records share one structure-of-arrays
// allocation obtained from a vexmem.Allocator.
//
// Capacities are primes taken from a fixed catalog and grow by about 1.5x.
// Removed slots are threaded onto a free list and reused before the table
// grows, so Len() is always the used index range minus the free count.
// Bucket indices are computed with a division-free modulo whose constant is
// recomputed whenever the capacity changes.
//
// Misuse such as a zero capacity, use after Release or records with Go
// pointers on a resource that cannot hold them is fatal.
package dict
