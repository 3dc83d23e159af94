//go:build !unix

package vexmem

import "sync/atomic"

// Pages serves page-rounded blocks from the Go heap where anonymous memory
// mapping is not available.
type Pages struct {
	pageSize int
	mapped   atomic.Int64
	maps     atomic.Int64
}

// NewPages returns a page resource.
func NewPages() *Pages {
	return &Pages{pageSize: 4096}
}

// PageSize returns the granularity of every allocation.
func (p *Pages) PageSize() int { return p.pageSize }

// Allocate returns size bytes from a page-rounded heap block.
func (p *Pages) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	n := alignUp(size, p.pageSize)
	b := DefaultHeap.Allocate(n, max(normAlign(align), 64))
	p.mapped.Add(int64(n))
	p.maps.Add(1)
	return b[:size]
}

// Free releases b.
func (p *Pages) Free(b []byte) {
	if b == nil {
		return
	}
	n := alignUp(len(b), p.pageSize)
	DefaultHeap.Free(b[:n:n])
	p.mapped.Add(-int64(n))
	p.maps.Add(-1)
}

// Mapped returns the number of bytes currently held.
func (p *Pages) Mapped() int { return int(p.mapped.Load()) }

// Mappings returns the number of live blocks.
func (p *Pages) Mappings() int { return int(p.maps.Load()) }
