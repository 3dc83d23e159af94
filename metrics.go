package vexmem

// Metrics is a snapshot of a resource's memory accounting.
type Metrics struct {
	SizeInUse   int     // Bytes handed out, including alignment padding
	Capacity    int     // Bytes reserved by the resource
	NumBlocks   int     // Backing blocks (1 for fixed buffers)
	Spilled     int     // Allocations served by a fallback
	Utilization float64 // SizeInUse / Capacity (0.0-1.0)
}

func utilization(used, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity)
}

// Utilization returns the ratio of bytes in use to capacity.
func (a *Arena) Utilization() float64 {
	return utilization(a.Len(), a.Cap())
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.Len(),
		Capacity:    a.Cap(),
		NumBlocks:   1,
		Utilization: a.Utilization(),
	}
}

// Metrics returns a snapshot of the inline buffer's statistics.
func (in *Inline) Metrics() Metrics {
	m := in.arena.Metrics()
	m.Spilled = in.spilled
	return m
}

// Utilization returns the ratio of bytes in use to bytes reserved.
func (c *Chain) Utilization() float64 {
	return utilization(c.SizeInUse(), c.TotalReserved())
}

// Metrics returns a snapshot of chain statistics.
func (c *Chain) Metrics() Metrics {
	return Metrics{
		SizeInUse:   c.SizeInUse(),
		Capacity:    c.TotalReserved(),
		NumBlocks:   c.NumBlocks(),
		Utilization: c.Utilization(),
	}
}

// Metrics returns a snapshot of heap statistics. Capacity equals SizeInUse
// because the heap reserves nothing up front.
func (h *Heap) Metrics() Metrics {
	live := h.Live()
	return Metrics{
		SizeInUse:   live,
		Capacity:    live,
		NumBlocks:   h.Outstanding(),
		Utilization: utilization(live, live),
	}
}
