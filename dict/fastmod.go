package dict

import "math/bits"

// Division-free remainder by a fixed 32-bit divisor (Lemire, Kaser, Kurz:
// "Faster Remainder by Direct Computation", 2019). Exact for every 32-bit
// numerator and divisor > 0.

func fastmodM(d uint32) uint64 {
	return ^uint64(0)/uint64(d) + 1
}

func fastmod(a uint32, m uint64, d uint32) uint32 {
	hi, _ := bits.Mul64(m*uint64(a), uint64(d))
	return uint32(hi)
}
