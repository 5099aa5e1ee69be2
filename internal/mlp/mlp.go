// Package mlp implements a matrix-based multilayer perceptron for the Strand ML Framework.
//
// Unlike the combinator pipeline in the nn package, Network holds an
// arbitrary-depth dense network monolithically: one dynamically sized
// weight matrix per layer transition, one bias vector per non-input layer,
// and a single activation function shared by every layer. Evaluation and
// in-place backpropagation follow the same gradient protocol as the
// combinators without per-layer dispatch, trading flexibility for an
// allocation-lean training loop.
package mlp

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/strand-ml/strand/internal/deriv"
)

// GenReq is a structured request for one initial parameter value. A
// Generator receives either a WeightReq or a BiasReq.
type GenReq interface {
	isGenReq()
}

// WeightReq requests the weight of the connection from unit From in layer
// Layer to unit To in layer Layer+1. Layer ranges over [0, layers-2].
type WeightReq struct {
	Layer int
	From  int
	To    int
}

// BiasReq requests the bias of unit Unit in layer Layer. Layer ranges over
// [1, layers-1]: the input layer has no biases.
type BiasReq struct {
	Layer int
	Unit  int
}

func (WeightReq) isGenReq() {}
func (BiasReq) isGenReq()   {}

// Generator produces an initial parameter value for a request. It must be
// total over the index ranges implied by the declared layer sizes.
type Generator func(req GenReq) float64

// Random returns a generator drawing every parameter uniformly from
// [lo, hi) using the given source, so initialization is reproducible from
// the seed.
func Random(r *rand.Rand, lo, hi float64) Generator {
	return func(GenReq) float64 { return lo + (hi-lo)*r.Float64() }
}

// Network is a fully connected multilayer network with dynamic layer
// sizes. Weight matrix l has shape (size[l+1] × size[l]); bias vector l
// belongs to layer l+1. Parameters are mutated in place by every
// backpropagation step and never resized after construction.
type Network struct {
	sizes   []int
	weights []*mat.Dense
	biases  []*mat.VecDense
}

// New creates a fully connected network with the given layer sizes, asking
// gen for every initial weight and bias.
//
// It fails with ErrWrongSize when fewer than two layers are declared, and
// with a WrongLayerSizeError naming the first empty layer when a layer has
// no units. No partially constructed network is ever returned.
func New(sizes []int, gen Generator) (*Network, error) {
	if len(sizes) < 2 {
		return nil, ErrWrongSize
	}
	for l, size := range sizes {
		if size < 1 {
			return nil, &WrongLayerSizeError{Layer: l}
		}
	}

	weights := make([]*mat.Dense, len(sizes)-1)
	for l := range weights {
		w := mat.NewDense(sizes[l+1], sizes[l], nil)
		for i := 0; i < sizes[l+1]; i++ {
			for j := 0; j < sizes[l]; j++ {
				w.Set(i, j, gen(WeightReq{Layer: l, From: j, To: i}))
			}
		}
		weights[l] = w
	}

	biases := make([]*mat.VecDense, len(sizes)-1)
	for l := 1; l < len(sizes); l++ {
		b := mat.NewVecDense(sizes[l], nil)
		for i := 0; i < sizes[l]; i++ {
			b.SetVec(i, gen(BiasReq{Layer: l, Unit: i}))
		}
		biases[l-1] = b
	}

	return &Network{
		sizes:   append([]int(nil), sizes...),
		weights: weights,
		biases:  biases,
	}, nil
}

// Sizes returns the declared layer sizes.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Weight returns the weight between unit from in the given layer and unit
// to in the next layer. The second result is false when the indices are
// out of range.
func (n *Network) Weight(layer, from, to int) (float64, bool) {
	if layer < 0 || layer >= len(n.weights) {
		return 0, false
	}
	if from < 0 || from >= n.sizes[layer] || to < 0 || to >= n.sizes[layer+1] {
		return 0, false
	}
	return n.weights[layer].At(to, from), true
}

// Bias returns the bias of the given unit. The second result is false for
// the input layer and out-of-range indices.
func (n *Network) Bias(layer, unit int) (float64, bool) {
	if layer < 1 || layer >= len(n.sizes) {
		return 0, false
	}
	if unit < 0 || unit >= n.sizes[layer] {
		return 0, false
	}
	return n.biases[layer-1].AtVec(unit), true
}

// evalInter walks the layers from input to output. At each transition it
// multiplies the running activation vector by the layer's weight matrix,
// hands the pre-bias weighted sums and the previous activations to the
// collectors, then adds the bias and applies the activation element-wise.
func (n *Network) evalInter(
	inputs []float64,
	act deriv.Deriv,
	keepSums func([]float64),
	keepActivs func([]float64),
) ([]float64, error) {
	if len(inputs) != n.sizes[0] {
		return nil, &WrongInputSizeError{Got: len(inputs), Want: n.sizes[0]}
	}

	activ := append([]float64(nil), inputs...)
	for l := range n.weights {
		sums := make([]float64, n.sizes[l+1])
		sumVec := mat.NewVecDense(len(sums), sums)
		sumVec.MulVec(n.weights[l], mat.NewVecDense(len(activ), activ))

		keepActivs(activ)
		keepSums(sums)

		next := make([]float64, len(sums))
		for i, s := range sums {
			next[i] = act.Call(s + n.biases[l].AtVec(i))
		}
		activ = next
	}
	return activ, nil
}

// Eval evaluates the network on inputs and returns the output layer's
// activations. It fails with a WrongInputSizeError when the input length
// does not match the declared input layer.
func (n *Network) Eval(inputs []float64, act deriv.Deriv) ([]float64, error) {
	return n.evalInter(inputs, act, func([]float64) {}, func([]float64) {})
}

// EvalIntermediate evaluates the network and retains every per-layer
// vector needed by a matching Backprop call.
func (n *Network) EvalIntermediate(inputs []float64, act deriv.Deriv) (*Intermediate, error) {
	inter := &Intermediate{
		Activs: make([][]float64, 0, len(n.sizes)),
		Sums:   make([][]float64, 0, len(n.sizes)-1),
	}
	out, err := n.evalInter(inputs, act,
		func(sums []float64) { inter.Sums = append(inter.Sums, sums) },
		func(activs []float64) { inter.Activs = append(inter.Activs, activs) },
	)
	if err != nil {
		return nil, err
	}
	inter.Activs = append(inter.Activs, out)
	return inter, nil
}

// Intermediate holds the retained vectors of one network evaluation.
type Intermediate struct {
	// Activs holds each layer's activations, from the input vector
	// through the output layer.
	Activs [][]float64
	// Sums holds each non-input layer's weighted sums as recorded before
	// the bias is added.
	Sums [][]float64
}

// Output returns the output layer's activations.
func (im *Intermediate) Output() []float64 {
	return im.Activs[len(im.Activs)-1]
}

// String renders the weights and biases layer by layer: one `| ... |` row
// per output unit of each transition followed by the `{ ... }` bias line
// of the layer it feeds.
func (n *Network) String() string {
	var sb strings.Builder
	for l, w := range n.weights {
		rows, cols := w.Dims()
		for i := 0; i < rows; i++ {
			sb.WriteString("|")
			for j := 0; j < cols; j++ {
				writeParam(&sb, w.At(i, j))
			}
			sb.WriteString(" |\n")
		}
		sb.WriteString("{")
		b := n.biases[l]
		for i := 0; i < b.Len(); i++ {
			writeParam(&sb, b.AtVec(i))
		}
		sb.WriteString(" }\n")
	}
	return sb.String()
}

// writeParam prints a parameter with two decimals when negative and three
// otherwise, keeping columns aligned around the sign.
func writeParam(sb *strings.Builder, v float64) {
	if v < 0 {
		fmt.Fprintf(sb, " %.2f", v)
	} else {
		fmt.Fprintf(sb, " %.3f", v)
	}
}
