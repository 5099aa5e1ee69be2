// Package deriv defines differentiable functions for the Strand ML framework.
//
// This package provides:
//   - Deriv interface: a scalar pure function bundled with its derivative
//   - NDeriv interface: a multi-input function with per-input partial derivatives
//   - Func: an adapter turning a pair of closures into a Deriv
//   - Activations: LeakyReLU, Sigmoid, Tanh, Identity
//
// Backpropagation multiplies local derivatives along the computation, so
// every activation and loss used with the nn and mlp packages is expressed
// through these two interfaces.
package deriv

// Deriv is a one-dimensional pure function with its derivative.
//
// Implementations must keep Call and Deriv consistent: Deriv(x) is the true
// derivative of Call at x. The activation tests verify this numerically.
type Deriv interface {
	// Call evaluates the function at x.
	Call(x float64) float64

	// Deriv evaluates the derivative of the function at x.
	Deriv(x float64) float64
}

// NDeriv is a multi-input pure function with partial derivatives.
//
// Loss functions implement NDeriv: Call reduces an output vector to a scalar
// error, and Deriv returns the partial derivative with respect to input p.
type NDeriv interface {
	// Call evaluates the function over the input vector.
	Call(x []float64) float64

	// Deriv evaluates the partial derivative with respect to input p.
	Deriv(x []float64, p int) float64
}

// Func adapts a pair of closures into a Deriv.
//
// Example:
//
//	double := deriv.Func{
//	    F: func(x float64) float64 { return 2 * x },
//	    D: func(x float64) float64 { return 2 },
//	}
type Func struct {
	F func(x float64) float64 // The function itself.
	D func(x float64) float64 // Its derivative.
}

// Call evaluates F at x.
func (f Func) Call(x float64) float64 { return f.F(x) }

// Deriv evaluates D at x.
func (f Func) Deriv(x float64) float64 { return f.D(x) }
