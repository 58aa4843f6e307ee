// Package rng provides the deterministic random number source used by
// level generation, plus weighted sampling on top of it.
package rng

// Source produces a stream of uniform values in [0,1). Generation code
// accepts a Source rather than a concrete generator so tests can inject
// fixed sequences.
type Source interface {
	Next() float64
}

// LCG constants: the numerical-recipes 32-bit linear congruential
// generator. The modulus is implicit in the uint32 wraparound.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// LCG is a 32-bit linear congruential generator. The entire generator
// state is one integer, so identical seeds always reproduce identical
// levels.
type LCG struct {
	state uint32
}

// NewLCG creates a generator from an integer seed.
func NewLCG(seed int64) *LCG {
	return &LCG{state: uint32(seed)}
}

// Next advances the generator and returns a value in [0,1).
func (l *LCG) Next() float64 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return float64(l.state) / float64(lcgModulus)
}

// Intn returns a uniform integer in [0,n). Panics if n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	v := int(src.Next() * float64(n))
	// Next returns values strictly below 1, but guard against float
	// rounding landing exactly on n.
	if v >= n {
		v = n - 1
	}
	return v
}

// Between returns a uniform integer in [lo,hi] inclusive. Panics if
// hi < lo.
func Between(src Source, lo, hi int) int {
	return lo + Intn(src, hi-lo+1)
}
