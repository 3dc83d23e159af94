package vexmem

import (
	"log/slog"
	"math"

	"github.com/pavanmanishd/vexmem/internal/check"
)

const (
	// DefaultBlockSize is the size of a chain's first block (64 KiB).
	DefaultBlockSize = 1 << 16

	// DefaultGrowth is the factor applied to the current block size when the
	// chain needs a new block.
	DefaultGrowth = 2.0

	// BlockHeaderSize is the prefix of every block reserved for the block
	// header (previous-block link and block size).
	BlockHeaderSize = 16

	blockAlign = 16
)

// ChainOptions configures a Chain. Zero fields take defaults.
type ChainOptions struct {
	BlockSize     int       // first block size, including the header
	Growth        float64   // must be > 1
	ZeroOnRelease bool      // zero the retained block's payload on Release
	Outer         Allocator // where blocks come from
	Logger        *slog.Logger
}

// block is one link of the chain. Its memory comes from the outer allocator.
type block struct {
	prev *block
	mem  []byte
}

// Chain is an arena that grows: when the current block is exhausted it
// allocates a larger block from the outer allocator and links it in front of
// the previous one. Free is a no-op. Not goroutine-safe.
type Chain struct {
	head    *block
	arena   Arena
	outer   Allocator
	growth  float64
	zero    bool
	log     *slog.Logger
	blocks  int
	total   int // sum of block sizes, headers included
	retired int // bytes consumed in blocks behind the head
}

// NewChain creates a Chain and allocates its first block.
func NewChain(opts ChainOptions) *Chain {
	if opts.BlockSize <= BlockHeaderSize {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.Growth <= 1 {
		opts.Growth = DefaultGrowth
	}
	c := &Chain{
		outer:  opts.Outer,
		growth: opts.Growth,
		zero:   opts.ZeroOnRelease,
		log:    opts.Logger,
	}
	c.push(opts.BlockSize)
	return c
}

// Handle returns an Allocator backed by c.
func (c *Chain) Handle() Allocator {
	return Allocator{res: c}
}

// Allocate serves from the current block, growing the chain once if needed.
func (c *Chain) Allocate(size, align int) []byte {
	c.panicIfClosed()
	if size <= 0 {
		return nil
	}
	if b := c.arena.Allocate(size, align); b != nil {
		return b
	}
	c.grow(size, normAlign(align))
	b := c.arena.Allocate(size, align)
	check.That(b != nil, "chain: allocation failed right after growth")
	return b
}

// Free is a no-op.
func (c *Chain) Free([]byte) {}

// grow links a new block large enough for size bytes at align.
func (c *Chain) grow(size, align int) {
	need := BlockHeaderSize + size + align
	next := int(math.Ceil(float64(c.arena.Cap()) * c.growth))
	c.retired += c.arena.Len() - BlockHeaderSize
	c.push(max(next, need))
}

func (c *Chain) push(size int) {
	mem := c.outer.Allocate(size, blockAlign)
	check.That(mem != nil, "chain: outer allocator could not provide a block")
	c.head = &block{prev: c.head, mem: mem}
	c.arena.rebase(mem, BlockHeaderSize)
	c.blocks++
	c.total += len(mem)
	if c.log != nil {
		c.log.Debug("chain: new block", "size", len(mem), "blocks", c.blocks, "reserved", c.total)
	}
}

// Release frees every block except the most recent one and rewinds the arena
// over it. All previous allocations become invalid.
func (c *Chain) Release() {
	c.panicIfClosed()
	for b := c.head.prev; b != nil; {
		prev := b.prev
		c.outer.Free(b.mem)
		b.prev, b.mem = nil, nil
		b = prev
	}
	c.head.prev = nil
	c.blocks = 1
	c.total = len(c.head.mem)
	c.retired = 0
	if c.zero {
		clear(c.head.mem[BlockHeaderSize:])
	}
	c.arena.rebase(c.head.mem, BlockHeaderSize)
}

// ReleaseAndReserve frees the whole chain and starts over with a single block
// as large as everything reserved so far, so a reused chain does not have to
// grow again.
func (c *Chain) ReleaseAndReserve() {
	c.panicIfClosed()
	total := c.total
	c.freeAll()
	c.push(total)
}

// Close frees every block. Any subsequent operation is fatal.
func (c *Chain) Close() {
	if c.head == nil {
		return
	}
	c.freeAll()
	c.arena.rebase(nil, 0)
}

func (c *Chain) freeAll() {
	for b := c.head; b != nil; {
		prev := b.prev
		c.outer.Free(b.mem)
		b.prev, b.mem = nil, nil
		b = prev
	}
	c.head = nil
	c.blocks = 0
	c.total = 0
	c.retired = 0
}

// NumBlocks returns the number of linked blocks.
func (c *Chain) NumBlocks() int { return c.blocks }

// TotalReserved returns the sum of all block sizes, headers included.
func (c *Chain) TotalReserved() int { return c.total }

// CurrentBlockSize returns the size of the head block.
func (c *Chain) CurrentBlockSize() int { return c.arena.Cap() }

// SizeInUse returns the bytes consumed across all blocks, excluding headers.
func (c *Chain) SizeInUse() int {
	if c.head == nil {
		return 0
	}
	return c.retired + c.arena.Len() - BlockHeaderSize
}

// Owns reports whether b lies inside any block of the chain.
func (c *Chain) Owns(b []byte) bool {
	for blk := c.head; blk != nil; blk = blk.prev {
		a := Arena{buf: blk.mem}
		if a.Owns(b) {
			return true
		}
	}
	return false
}

func (c *Chain) panicIfClosed() {
	if c.head == nil {
		check.Failf("chain: use after Close()")
	}
}
