package vexmem

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(alignedBuffer(1024))

	// Test initial state
	if a.Len() != 0 {
		t.Errorf("Initial Len = %d, want 0", a.Len())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.Allocate(100, 1)
	a.Allocate(200, 8) // 4 bytes of padding

	m := a.Metrics()
	if m.SizeInUse != 304 {
		t.Errorf("Metrics.SizeInUse = %d, want 304", m.SizeInUse)
	}
	if m.Capacity != 1024 {
		t.Errorf("Metrics.Capacity = %d, want 1024", m.Capacity)
	}
	if m.NumBlocks != 1 {
		t.Errorf("Metrics.NumBlocks = %d, want 1", m.NumBlocks)
	}
	if m.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, a.Utilization())
	}

	a.Reset()
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
}

func TestEmptyArenaMetrics(t *testing.T) {
	a := NewArena(nil)
	if u := a.Utilization(); u != 0 {
		t.Errorf("Utilization of empty arena = %f, want 0", u)
	}
}

func TestInlineMetrics(t *testing.T) {
	in := NewInline(64, Allocator{})
	in.Allocate(64, 1)
	in.Allocate(8, 1)
	in.Allocate(8, 1)

	m := in.Metrics()
	if m.SizeInUse != 64 || m.Capacity != 64 {
		t.Errorf("Metrics = %+v, want SizeInUse and Capacity 64", m)
	}
	if m.Spilled != 2 {
		t.Errorf("Metrics.Spilled = %d, want 2", m.Spilled)
	}
	if m.Utilization != 1 {
		t.Errorf("Metrics.Utilization = %f, want 1", m.Utilization)
	}
}

func TestChainMetrics(t *testing.T) {
	c := NewChain(ChainOptions{BlockSize: 256})
	c.Allocate(200, 1)
	c.Allocate(200, 1) // forces a second block

	m := c.Metrics()
	if m.NumBlocks != 2 {
		t.Errorf("Metrics.NumBlocks = %d, want 2", m.NumBlocks)
	}
	if m.SizeInUse != 400 {
		t.Errorf("Metrics.SizeInUse = %d, want 400", m.SizeInUse)
	}
	if m.Capacity != c.TotalReserved() {
		t.Errorf("Metrics.Capacity = %d, want %d", m.Capacity, c.TotalReserved())
	}
	if m.Utilization <= 0 || m.Utilization > 1 {
		t.Errorf("Metrics.Utilization = %f, want 0 < x <= 1", m.Utilization)
	}

	c.Close()
	if m := c.Metrics(); m.SizeInUse != 0 || m.Capacity != 0 || m.NumBlocks != 0 {
		t.Errorf("Metrics after Close = %+v, want zero", m)
	}
}

func TestHeapMetricsFree(t *testing.T) {
	h := &Heap{}
	b := h.Allocate(100, 8)
	h.Allocate(28, 8)

	m := h.Metrics()
	if m.SizeInUse != 128 || m.Capacity != 128 {
		t.Errorf("Metrics = %+v, want 128 bytes live", m)
	}
	if m.NumBlocks != 2 {
		t.Errorf("Metrics.NumBlocks = %d, want 2", m.NumBlocks)
	}
	if m.Utilization != 1 {
		t.Errorf("Metrics.Utilization = %f, want 1", m.Utilization)
	}

	h.Free(b)
	if m := h.Metrics(); m.SizeInUse != 28 || m.NumBlocks != 1 {
		t.Errorf("Metrics after Free = %+v, want 28 bytes in 1 block", m)
	}
}
