package nn

import "github.com/strand-ml/strand/internal/deriv"

// ErrorBlock is a terminal module adapting a multi-input differentiable
// function (typically a loss from the loss package) to the Module contract,
// so a pipeline can end in a scalar error:
//
//	net := nn.NewChain[[]float64, []float64, float64](
//	    layers,
//	    nn.NewErrorBlock(loss.Squared{Target: expected}),
//	)
//
// As the last block of a pipeline the error block has no successor, so its
// Train ignores the incoming output gradient (the seed gradient of the
// scalar error with respect to itself is 1) and returns the partial
// derivatives of the error with respect to its inputs.
type ErrorBlock struct {
	Fn deriv.NDeriv
}

// NewErrorBlock wraps fn as a terminal module.
func NewErrorBlock(fn deriv.NDeriv) *ErrorBlock {
	return &ErrorBlock{Fn: fn}
}

// ScalarRecord is the intermediate record of a scalar-valued block: the
// scalar is all there is to retain.
type ScalarRecord float64

// Output returns the scalar.
func (r ScalarRecord) Output() float64 { return float64(r) }

// Intermediate computes the scalar error over input.
func (e *ErrorBlock) Intermediate(input []float64) Record[float64] {
	return ScalarRecord(e.Fn.Call(input))
}

// Train returns the partial derivatives of the error with respect to each
// input. The block holds no parameters, so nothing is updated.
func (e *ErrorBlock) Train(input []float64, _ Record[float64], _ float64, _ float64) []float64 {
	grad := make([]float64, len(input))
	for p := range grad {
		grad[p] = e.Fn.Deriv(input, p)
	}
	return grad
}
