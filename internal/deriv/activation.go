package deriv

import "math"

// LeakyReLU is the leaky rectified linear unit activation function.
//
// f(x) = x for x > 0, Alpha*x otherwise. The small negative slope keeps
// gradients alive where a plain rectifier would zero them out.
type LeakyReLU struct {
	Alpha float64 // Slope for negative inputs, typically 0.01-0.1.
}

// Call applies the leaky rectifier.
func (l LeakyReLU) Call(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Alpha * x
}

// Deriv returns 1 for positive inputs and Alpha otherwise.
func (l LeakyReLU) Deriv(x float64) float64 {
	if x > 0 {
		return 1
	}
	return l.Alpha
}

// Sigmoid is the logistic activation function.
//
// σ(x) = 1 / (1 + exp(-x)), squashing values into (0, 1).
type Sigmoid struct{}

// Call applies the logistic function.
func (Sigmoid) Call(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Deriv returns σ(x) * (1 - σ(x)).
func (s Sigmoid) Deriv(x float64) float64 {
	a := s.Call(x)
	return a * (1 - a)
}

// Tanh is the hyperbolic tangent activation function, squashing values
// into (-1, 1).
type Tanh struct{}

// Call applies tanh.
func (Tanh) Call(x float64) float64 { return math.Tanh(x) }

// Deriv returns 1 - tanh²(x).
func (Tanh) Deriv(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// Identity passes inputs through unchanged. Useful for purely linear
// layers and for testing backward passes against hand-computed values.
type Identity struct{}

// Call returns x.
func (Identity) Call(x float64) float64 { return x }

// Deriv returns 1.
func (Identity) Deriv(x float64) float64 { return 1 }
