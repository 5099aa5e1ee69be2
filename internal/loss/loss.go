// Package loss implements error functions for the Strand ML framework.
//
// Each loss pairs a network output vector with a fixed target vector and
// satisfies deriv.NDeriv: Call reduces the outputs to a scalar error and
// Deriv supplies the per-output partial derivative that seeds
// backpropagation.
//
// Call reduces element contributions with a data-parallel sum. Every
// element's contribution is independent, so the reduction carries no
// ordering requirement; across different fan-outs the result may vary in
// the last bits.
package loss

import (
	"math"

	"github.com/strand-ml/strand/internal/parallel"
)

// Squared sums the squared differences between the outputs and the target.
//
// Call(x)     = Σ (x[i] - target[i])²
// Deriv(x, p) = 2 * (x[p] - target[p])
type Squared struct {
	Target []float64
}

// Call returns the squared error over x.
//
// x must have the same length as Target.
func (s Squared) Call(x []float64) float64 {
	return parallel.Sum(len(x), func(i int) float64 {
		d := x[i] - s.Target[i]
		return d * d
	}, parallel.DefaultConfig())
}

// Deriv returns the partial derivative of the squared error with respect
// to output p.
func (s Squared) Deriv(x []float64, p int) float64 {
	return 2 * (x[p] - s.Target[p])
}

// Abs sums the absolute differences between the outputs and the target.
//
// Call(x)     = Σ |x[i] - target[i]|
// Deriv(x, p) = x[p] - target[p]
//
// Deriv returns the signed difference rather than its sign, so update
// steps shrink as outputs approach the target.
type Abs struct {
	Target []float64
}

// Call returns the absolute error over x.
//
// x must have the same length as Target.
func (a Abs) Call(x []float64) float64 {
	return parallel.Sum(len(x), func(i int) float64 {
		return math.Abs(x[i] - a.Target[i])
	}, parallel.DefaultConfig())
}

// Deriv returns the signed difference x[p] - target[p].
func (a Abs) Deriv(x []float64, p int) float64 {
	return x[p] - a.Target[p]
}
