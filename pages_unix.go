//go:build unix

package vexmem

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// Pages maps anonymous memory straight from the operating system. Every
// allocation is rounded up to whole pages and returned with Free through
// munmap, so it suits large, long-lived blocks such as a Chain's outer
// allocator. Safe for concurrent use.
type Pages struct {
	pageSize int
	mapped   atomic.Int64
	maps     atomic.Int64
}

// NewPages returns a page resource.
func NewPages() *Pages {
	return &Pages{pageSize: unix.Getpagesize()}
}

// PageSize returns the granularity of every mapping.
func (p *Pages) PageSize() int { return p.pageSize }

// Allocate maps enough pages for size bytes. Alignment beyond the page size
// cannot be honoured and is a usage error. Returns nil if the mapping fails.
func (p *Pages) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	align = normAlign(align)
	check.That(align <= p.pageSize, "pages: alignment larger than the page size")

	n := alignUp(size, p.pageSize)
	mem, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	p.mapped.Add(int64(n))
	p.maps.Add(1)
	return mem[:size]
}

// Free unmaps the pages behind b. b must start where Allocate's result
// started and keep its length.
func (p *Pages) Free(b []byte) {
	if b == nil {
		return
	}
	n := alignUp(len(b), p.pageSize)
	full := unsafe.Slice(unsafe.SliceData(b), n)
	err := unix.Munmap(full)
	check.That(err == nil, "pages: munmap of a slice this resource did not map")
	p.mapped.Add(-int64(n))
	p.maps.Add(-1)
}

// Mapped returns the number of bytes currently mapped.
func (p *Pages) Mapped() int { return int(p.mapped.Load()) }

// Mappings returns the number of live mappings.
func (p *Pages) Mappings() int { return int(p.maps.Load()) }
