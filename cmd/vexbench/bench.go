package main

import (
	"log/slog"
	"testing"

	"github.com/pavanmanishd/vexmem"
	"github.com/pavanmanishd/vexmem/dict"
	"github.com/pavanmanishd/vexmem/internal/rng"
)

var suites = map[string]func(n int) error{
	"rng":   benchRNG,
	"alloc": benchAlloc,
	"dict":  benchDict,
}

var sink uint64

func report(name string, f func(b *testing.B)) {
	res := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		f(b)
	})
	slog.Info("benchmark",
		"name", name,
		"n", res.N,
		"ns_per_op", res.NsPerOp(),
		"allocs_per_op", res.AllocsPerOp(),
		"bytes_per_op", res.AllocedBytesPerOp(),
	)
}

func benchRNG(int) error {
	report("rng/uint32", func(b *testing.B) {
		r := rng.New(*Seed)
		for i := 0; i < b.N; i++ {
			sink += uint64(r.Uint32())
		}
	})
	report("rng/float64", func(b *testing.B) {
		r := rng.New(*Seed)
		var acc float64
		for i := 0; i < b.N; i++ {
			acc += r.Float64()
		}
		sink += uint64(acc)
	})
	report("rng/stateless", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += rng.Stateless(*Seed, uint64(i))
		}
	})
	return nil
}

type particle struct {
	pos, vel [3]float32
	ttl      int32
}

func benchAlloc(int) error {
	const perRound = 256

	report("alloc/heap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for j := 0; j < perRound; j++ {
				p := vexmem.New[particle](vexmem.Allocator{})
				p.ttl = int32(j)
			}
		}
	})
	report("alloc/arena", func(b *testing.B) {
		a := vexmem.NewArena(make([]byte, perRound*64))
		h := a.Handle()
		for i := 0; i < b.N; i++ {
			for j := 0; j < perRound; j++ {
				p := vexmem.New[particle](h)
				p.ttl = int32(j)
			}
			a.Reset()
		}
	})
	report("alloc/chain", func(b *testing.B) {
		c := vexmem.NewChain(vexmem.ChainOptions{BlockSize: 1024})
		defer c.Close()
		h := c.Handle()
		for i := 0; i < b.N; i++ {
			for j := 0; j < perRound; j++ {
				p := vexmem.New[particle](h)
				p.ttl = int32(j)
			}
			c.Release()
		}
	})
	return nil
}

func benchDict(n int) error {
	res, err := newResource(*Resource)
	if err != nil {
		return err
	}
	defer res.Close()

	r := rng.New(*Seed)
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = r.Uint32()
	}

	report("dict/insert/"+res.name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d := dict.New[uint32, uint64](dict.DefaultCapacity, res.Handle())
			for j, k := range keys {
				d.Emplace(k, uint64(j))
			}
			d.Release()
			res.Reset()
		}
	})
	report("dict/insert/gomap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m := make(map[uint32]uint64, dict.DefaultCapacity)
			for j, k := range keys {
				m[k] = uint64(j)
			}
		}
	})

	d := dict.New[uint32, uint64](dict.DefaultCapacity, res.Handle())
	m := make(map[uint32]uint64)
	for j, k := range keys {
		d.Emplace(k, uint64(j))
		m[k] = uint64(j)
	}
	report("dict/find/"+res.name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if v := d.Find(keys[i%len(keys)]); v != nil {
				sink += *v
			}
		}
	})
	report("dict/find/gomap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += m[keys[i%len(keys)]]
		}
	})
	report("dict/iterate/"+res.name, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, v := range d.All() {
				sink += v
			}
		}
	})
	report("dict/iterate/gomap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, v := range m {
				sink += v
			}
		}
	})
	d.Release()
	return nil
}
