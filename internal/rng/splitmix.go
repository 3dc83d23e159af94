// Package rng provides the Splitmix64 generator used to build reproducible
// workloads.
package rng

const golden = 0x9E3779B97F4A7C15

// Splitmix64 is a tiny, fast, non-cryptographic generator.
type Splitmix64 struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *Splitmix64 {
	return &Splitmix64{state: seed}
}

// Seed resets the generator state.
func (s *Splitmix64) Seed(seed uint64) { s.state = seed }

// Uint64 returns the next 64-bit value.
func (s *Splitmix64) Uint64() uint64 {
	s.state += golden
	return mix(s.state)
}

// Uint32 returns the low 32 bits of the next value.
func (s *Splitmix64) Uint32() uint32 { return uint32(s.Uint64()) }

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Splitmix64) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	return int(s.Uint64() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the mantissa bits.
func (s *Splitmix64) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Stateless returns the offset-th value of the sequence seeded with seed
// without touching any generator state.
func Stateless(seed, offset uint64) uint64 {
	return mix(seed + (offset+1)*golden)
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
