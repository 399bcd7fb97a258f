package fractal

import "math/rand/v2"

// RandomSource is the only source of randomness used by the painter and the
// generator. Runs that share a seed produce identical output.
type RandomSource interface {
	NextBit() int
	NextFloatInRange(lo, hi float64) float64
}

// Random is a seedable PCG stream.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

func (r *Random) NextBit() int {
	return r.rng.IntN(2)
}

// NextFloatInRange returns a value in [lo, hi).
func (r *Random) NextFloatInRange(lo float64, hi float64) float64 {
	return lo + (hi-lo)*r.rng.Float64()
}
