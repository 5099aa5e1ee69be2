package mlp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/strand-ml/strand/internal/deriv"
)

// BackpropDeriv runs one in-place backpropagation cycle over the network
// using the retained evaluation, the shared activation function, an error
// function and a learning rate.
//
// It walks the layers from output to input. At each layer the running
// derivative vector is multiplied element-wise by the activation
// derivative at that layer's stored weighted sums, giving the layer's
// delta; biases and weights then take a gradient-descent step, and the
// derivative vector for the previous layer is formed from the weights as
// they were before the step.
//
// inter must come from EvalIntermediate on this same network with the same
// activation; behavior with a mismatched pair is unspecified.
//
// Returns the scalar error and the derivative vector at the input layer.
func (n *Network) BackpropDeriv(inter *Intermediate, act deriv.Deriv, errFn deriv.NDeriv, rate float64) (float64, []float64) {
	outputs := inter.Output()
	errVal := errFn.Call(outputs)

	derivs := make([]float64, n.sizes[len(n.sizes)-1])
	for i := range derivs {
		derivs[i] = errFn.Deriv(outputs, i)
	}

	for l := len(n.weights) - 1; l >= 0; l-- {
		// Fold in the activation derivative: derivs becomes the delta.
		for i, sum := range inter.Sums[l] {
			derivs[i] *= act.Deriv(sum)
		}

		// Derivatives for the previous layer, from the pre-update weights:
		// next[j] = Σ_i delta[i] * weight[i][j].
		next := make([]float64, n.sizes[l])
		nextVec := mat.NewVecDense(len(next), next)
		nextVec.MulVec(n.weights[l].T(), mat.NewVecDense(len(derivs), derivs))

		for i, delta := range derivs {
			n.biases[l].SetVec(i, n.biases[l].AtVec(i)-rate*delta)
			for j, a := range inter.Activs[l] {
				n.weights[l].Set(i, j, n.weights[l].At(i, j)-rate*delta*a)
			}
		}

		derivs = next
	}

	return errVal, derivs
}

// Backprop runs one in-place backpropagation cycle and returns only the
// scalar error, discarding the input-layer gradient.
func (n *Network) Backprop(inter *Intermediate, act deriv.Deriv, errFn deriv.NDeriv, rate float64) float64 {
	err, _ := n.BackpropDeriv(inter, act, errFn, rate)
	return err
}
