package nn

import (
	"math"
	"math/rand"
)

// WeightGen generates an initial weight for the connection from input unit
// j to output unit i.
type WeightGen func(j, i int) float64

// BiasGen generates an initial bias for output unit i.
type BiasGen func(i int) float64

// Uniform returns generators drawing weights and biases uniformly from
// [lo, hi) using the given source.
//
// Randomness is always threaded through an explicit *rand.Rand so that
// initialization stays reproducible: the same seed yields the same
// parameters.
func Uniform(r *rand.Rand, lo, hi float64) (WeightGen, BiasGen) {
	weight := func(_, _ int) float64 { return lo + (hi-lo)*r.Float64() }
	bias := func(_ int) float64 { return lo + (hi-lo)*r.Float64() }
	return weight, bias
}

// Xavier returns Glorot-uniform weight generators for a layer with the
// given fan-in and fan-out, with zero biases.
//
// Weights are drawn from U(-b, b) with b = sqrt(6 / (fanIn + fanOut)),
// which keeps activation variance stable across layers.
func Xavier(r *rand.Rand, fanIn, fanOut int) (WeightGen, BiasGen) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	weight := func(_, _ int) float64 { return (r.Float64()*2 - 1) * bound }
	bias := func(_ int) float64 { return 0 }
	return weight, bias
}

// Zeros returns generators producing all-zero weights and biases. Mostly
// useful in tests.
func Zeros() (WeightGen, BiasGen) {
	return func(_, _ int) float64 { return 0 }, func(_ int) float64 { return 0 }
}
