package main

import (
	"fmt"
	"log/slog"

	"github.com/pavanmanishd/vexmem"
)

// resource is a memory resource picked on the command line, with a way to
// reuse it between runs and to report on it.
type resource struct {
	name    string
	handle  vexmem.Allocator
	reset   func()
	metrics func() vexmem.Metrics
	close   func()
}

func newResource(name string) (*resource, error) {
	r := &resource{name: name, reset: func() {}, close: func() {}}
	switch name {
	case "heap":
		h := &vexmem.Heap{}
		r.handle = vexmem.Handle(h)
		r.metrics = h.Metrics
	case "arena":
		a := vexmem.NewStrictArena(vexmem.DefaultHeap.Allocate(*ArenaSize, 64))
		r.handle = a.Handle()
		r.reset = a.Reset
		r.metrics = a.Metrics
	case "inline":
		in := vexmem.NewInline(*ArenaSize, vexmem.Allocator{})
		r.handle = in.Handle()
		r.reset = in.Reset
		r.metrics = in.Metrics
	case "chain", "pages":
		opts := vexmem.ChainOptions{
			BlockSize: *BlockSize,
			Logger:    slog.Default(),
		}
		if name == "pages" {
			opts.Outer = vexmem.Handle(vexmem.NewPages())
		}
		c := vexmem.NewChain(opts)
		r.handle = c.Handle()
		r.reset = c.ReleaseAndReserve
		r.metrics = c.Metrics
		r.close = c.Close
	default:
		return nil, fmt.Errorf("unknown resource %q", name)
	}
	return r, nil
}

func (r *resource) Handle() vexmem.Allocator { return r.handle }

// Reset makes the whole resource available again. Every table built on it
// must be dead.
func (r *resource) Reset() { r.reset() }

func (r *resource) Close() {
	m := r.metrics()
	slog.Debug("resource usage",
		"resource", r.name,
		"in_use", m.SizeInUse,
		"capacity", m.Capacity,
		"blocks", m.NumBlocks,
		"spilled", m.Spilled,
		"utilization", m.Utilization,
	)
	r.close()
}
