package nn

// Chain composes two modules sequentially: the first module's output feeds
// the second module's input. A Chain is itself a Module, so chains nest to
// arbitrary depth.
//
// Example:
//
//	hidden := nn.NewDense(2, 4, deriv.Sigmoid{}, weights, biases)
//	output := nn.NewDense(4, 1, deriv.Sigmoid{}, weights, biases)
//	net := nn.NewChain[[]float64, []float64, []float64](hidden, output)
type Chain[In, Mid, Out any] struct {
	First  Module[In, Mid]
	Second Module[Mid, Out]
}

// NewChain links first and second together, after each other.
func NewChain[In, Mid, Out any](first Module[In, Mid], second Module[Mid, Out]) *Chain[In, Mid, Out] {
	return &Chain[In, Mid, Out]{First: first, Second: second}
}

// ChainRecord holds the records of both stages of one Chain forward pass.
type ChainRecord[Mid, Out any] struct {
	First  Record[Mid]
	Second Record[Out]
}

// Output returns the second stage's output. Delegation, not duplication.
func (r *ChainRecord[Mid, Out]) Output() Out { return r.Second.Output() }

// Intermediate evaluates the first stage, feeds its output to the second,
// and retains both records.
func (c *Chain[In, Mid, Out]) Intermediate(input In) Record[Out] {
	first := c.First.Intermediate(input)
	second := c.Second.Intermediate(first.Output())
	return &ChainRecord[Mid, Out]{First: first, Second: second}
}

// Train backpropagates through both stages.
//
// The second stage must update and yield its input gradient before the
// first stage is touched: that gradient is the first stage's output
// gradient. The returned gradient is the chain's own input gradient.
func (c *Chain[In, Mid, Out]) Train(input In, rec Record[Out], grad Out, rate float64) In {
	r := rec.(*ChainRecord[Mid, Out])
	mid := c.Second.Train(r.First.Output(), r.Second, grad, rate)
	return c.First.Train(input, r.First, mid, rate)
}
