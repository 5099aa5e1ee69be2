package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/strand-ml/strand/internal/deriv"
)

// Dense implements a fully connected layer.
//
// The forward pass computes, per output unit,
//
//	sum[i] = Σ_j weight[i][j]*input[j] + bias[i]
//	out[i] = act(sum[i])
//
// The weight matrix has shape [out, in] and is owned exclusively by the
// layer: it is mutated only during the layer's own Train step.
type Dense struct {
	in, out int
	weight  *mat.Dense    // [out, in]
	bias    *mat.VecDense // [out]
	act     deriv.Deriv
}

// NewDense creates a fully connected layer with the given activation and
// with weights and biases filled in by the generator functions.
//
// The weight generator is invoked once per (input j, output i) position,
// the bias generator once per output unit.
//
// Example:
//
//	r := rand.New(rand.NewSource(1))
//	weights, biases := nn.Uniform(r, -2, 2)
//	layer := nn.NewDense(5, 3, deriv.Sigmoid{}, weights, biases)
func NewDense(in, out int, act deriv.Deriv, weights WeightGen, biases BiasGen) *Dense {
	w := mat.NewDense(out, in, nil)
	for i := 0; i < out; i++ {
		for j := 0; j < in; j++ {
			w.Set(i, j, weights(j, i))
		}
	}

	b := mat.NewVecDense(out, nil)
	for i := 0; i < out; i++ {
		b.SetVec(i, biases(i))
	}

	return &Dense{in: in, out: out, weight: w, bias: b, act: act}
}

// DenseRecord retains the weighted sums and outputs of one Dense forward
// pass. One Train call consumes one record.
type DenseRecord struct {
	sums    []float64 // Pre-activation weighted sums, bias included.
	outputs []float64 // Post-activation outputs.
}

// Output returns the post-activation outputs.
func (r *DenseRecord) Output() []float64 { return r.outputs }

// Sums returns the pre-activation weighted sums.
func (r *DenseRecord) Sums() []float64 { return r.sums }

// Intermediate computes the weighted sums and outputs for input, retaining
// both for a matching Train call.
func (d *Dense) Intermediate(input []float64) Record[[]float64] {
	if len(input) != d.in {
		panic(fmt.Sprintf("nn: Dense.Intermediate: expected %d inputs, got %d", d.in, len(input)))
	}

	sums := make([]float64, d.out)
	sumVec := mat.NewVecDense(d.out, sums)
	sumVec.MulVec(d.weight, mat.NewVecDense(d.in, input))
	sumVec.AddVec(sumVec, d.bias)

	outputs := make([]float64, d.out)
	for i, s := range sums {
		outputs[i] = d.act.Call(s)
	}

	return &DenseRecord{sums: sums, outputs: outputs}
}

// Train performs one gradient-descent step on the weights and bias and
// returns the gradient of the error with respect to the layer's inputs.
//
// The input gradient is computed from the weights used in the forward
// pass, before this step's update is applied.
func (d *Dense) Train(input []float64, rec Record[[]float64], grad []float64, rate float64) []float64 {
	r := rec.(*DenseRecord)

	// Gradients through the activation.
	actGrad := make([]float64, d.out)
	for i := range actGrad {
		actGrad[i] = grad[i] * d.act.Deriv(r.sums[i])
	}

	// Input gradients from the pre-update weights: inGrad = Wᵀ·actGrad.
	inGrad := make([]float64, d.in)
	inVec := mat.NewVecDense(d.in, inGrad)
	inVec.MulVec(d.weight.T(), mat.NewVecDense(d.out, actGrad))

	for i := 0; i < d.out; i++ {
		d.bias.SetVec(i, d.bias.AtVec(i)-rate*actGrad[i])
		for j := 0; j < d.in; j++ {
			d.weight.Set(i, j, d.weight.At(i, j)-rate*input[j]*actGrad[i])
		}
	}

	return inGrad
}

// In returns the number of inputs.
func (d *Dense) In() int { return d.in }

// Out returns the number of outputs.
func (d *Dense) Out() int { return d.out }

// Weight returns the weight matrix. Shared state, not a copy.
func (d *Dense) Weight() *mat.Dense { return d.weight }

// Bias returns the bias vector. Shared state, not a copy.
func (d *Dense) Bias() *mat.VecDense { return d.bias }
