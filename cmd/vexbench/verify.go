package main

import (
	"fmt"
	"log/slog"

	"github.com/kelindar/bitmap"

	"github.com/pavanmanishd/vexmem"
	"github.com/pavanmanishd/vexmem/dict"
	"github.com/pavanmanishd/vexmem/internal/rng"
)

// verify drives a table with a random mix of operations and checks it after
// every step against a bitmap of live keys and a slice of expected values.
func verify(a vexmem.Allocator, ops, keys int, seed uint64) error {
	if keys <= 0 || keys > 1<<24 {
		return fmt.Errorf("key space %d out of range", keys)
	}
	r := rng.New(seed)
	d := dict.NewWithHasher[uint32, uint64](1, a, dict.IntHasher[uint32]{})
	defer d.Release()

	var live bitmap.Bitmap
	want := make([]uint64, keys)
	grows := 0

	for step := 0; step < ops; step++ {
		k := uint32(r.IntN(keys))
		switch op := r.IntN(100); {
		case op < 55:
			v := r.Uint64()
			capBefore := d.Cap()
			d.Emplace(k, v)
			if d.Cap() != capBefore {
				grows++
				slog.Debug("table grew", "step", step, "from", capBefore, "to", d.Cap())
				if !dict.IsPrime(d.Cap()) {
					return fmt.Errorf("step %d: capacity %d is not prime", step, d.Cap())
				}
			}
			want[k] = v
			live.Set(k)
		case op < 95:
			if got := d.Remove(k); got != live.Contains(k) {
				return fmt.Errorf("step %d: Remove(%d) = %v, want %v", step, k, got, live.Contains(k))
			}
			live.Remove(k)
		case op < 96:
			d.Clear()
			live = nil
		default:
			v, ok := d.Get(k)
			if ok != live.Contains(k) || (ok && v != want[k]) {
				return fmt.Errorf("step %d: Get(%d) = %d, %v", step, k, v, ok)
			}
		}
		if d.Len() != live.Count() {
			return fmt.Errorf("step %d: Len() = %d, want %d", step, d.Len(), live.Count())
		}
	}

	var seen bitmap.Bitmap
	for k, v := range d.All() {
		if !live.Contains(k) {
			return fmt.Errorf("iteration yielded removed key %d", k)
		}
		if seen.Contains(k) {
			return fmt.Errorf("iteration yielded key %d twice", k)
		}
		if v != want[k] {
			return fmt.Errorf("iteration yielded %d for key %d, want %d", v, k, want[k])
		}
		seen.Set(k)
	}
	if seen.Count() != live.Count() {
		return fmt.Errorf("iteration yielded %d keys, want %d", seen.Count(), live.Count())
	}
	var missing error
	live.Range(func(k uint32) {
		if missing == nil && !d.Contains(k) {
			missing = fmt.Errorf("live key %d not found", k)
		}
	})
	if missing != nil {
		return missing
	}

	slog.Info("table state", "len", d.Len(), "cap", d.Cap(), "grows", grows)
	return nil
}
