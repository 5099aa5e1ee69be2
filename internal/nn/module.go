// Package nn implements composable differentiable modules for the Strand ML Framework.
//
// This package provides building blocks for constructing trainable networks:
//   - Module interface: base contract for all differentiable blocks
//   - Record interface: retained forward-pass state for a correct backward pass
//   - Dense: fully connected layer
//   - Chain: sequential composition of two modules
//   - Zip: parallel composition of two modules with a merged output
//   - ErrorBlock: terminal loss block closing a pipeline
//
// Modules compose into arbitrarily deep pipelines while preserving a single
// gradient-propagation protocol: Intermediate evaluates forward and retains
// whatever the backward pass needs, Train updates parameters in place and
// hands the reduced gradient to its predecessor.
package nn

// Record holds whatever a module retained from one forward pass.
//
// A record is produced by Module.Intermediate and consumed by the matching
// Module.Train call. Output projects the final output without recomputation.
type Record[Out any] interface {
	// Output returns the module output captured during the forward pass.
	Output() Out
}

// Module is the base interface for all differentiable blocks.
//
// In and Out are the input and output value types; the same types carry the
// gradients with respect to inputs and outputs. Modules compose through
// Chain and Zip, which are Modules themselves:
//
//	net := nn.NewChain[[]float64, []float64, float64](
//	    nn.NewChain[[]float64, []float64, []float64](first, second),
//	    nn.NewErrorBlock(loss.Squared{Target: target}),
//	)
type Module[In, Out any] interface {
	// Intermediate evaluates the module on input and returns the retained
	// forward-pass state. It is a pure function of the input and the
	// current parameters; it must not mutate parameters.
	Intermediate(input In) Record[Out]

	// Train performs one parameter-update step and returns the gradient of
	// the error with respect to the module's input.
	//
	// rec must be the record produced by Intermediate for this same input;
	// behavior with a mismatched pair is unspecified. grad is the gradient
	// of the error with respect to the module's output. Parameters are
	// mutated only here.
	Train(input In, rec Record[Out], grad Out, rate float64) In
}

// Eval evaluates a module and returns only its output, discarding the
// intermediate state.
func Eval[In, Out any](m Module[In, Out], input In) Out {
	return m.Intermediate(input).Output()
}

// Pair carries the two halves of a Zip input (or input gradient).
type Pair[A, B any] struct {
	Top A
	Bot B
}
