// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides a matrix-based multilayer perceptron.
//
// Network holds an arbitrary-depth dense network with dynamically sized
// layers and a single activation function shared by all layers, and trains
// it with in-place backpropagation. It offers the same
// evaluate/backpropagate protocol as the nn combinators without the
// composition machinery.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/strand-ml/strand/deriv"
//	    "github.com/strand-ml/strand/loss"
//	    "github.com/strand-ml/strand/mlp"
//	)
//
//	func main() {
//	    r := rand.New(rand.NewSource(1))
//	    net, err := mlp.New([]int{2, 3, 1}, mlp.Random(r, -2, 2))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    activation := deriv.LeakyReLU{Alpha: 0.1}
//	    errFn := loss.Abs{Target: []float64{1}}
//
//	    inter, _ := net.EvalIntermediate([]float64{0, 1}, activation)
//	    errVal := net.Backprop(inter, activation, errFn, 0.1)
//	    _ = errVal
//	}
package mlp

import (
	"math/rand"

	"github.com/strand-ml/strand/internal/mlp"
)

// Network is a fully connected multilayer network with dynamic layer sizes.
type Network = mlp.Network

// Intermediate holds the retained vectors of one network evaluation.
type Intermediate = mlp.Intermediate

// GenReq is a structured request for one initial parameter value.
type GenReq = mlp.GenReq

// WeightReq requests an initial weight value.
type WeightReq = mlp.WeightReq

// BiasReq requests an initial bias value.
type BiasReq = mlp.BiasReq

// Generator produces an initial parameter value for a request.
type Generator = mlp.Generator

// New creates a fully connected network with the given layer sizes, asking
// gen for every initial weight and bias.
func New(sizes []int, gen Generator) (*Network, error) {
	return mlp.New(sizes, gen)
}

// Random returns a generator drawing every parameter uniformly from
// [lo, hi) using the given source.
func Random(r *rand.Rand, lo, hi float64) Generator {
	return mlp.Random(r, lo, hi)
}

// Errors

// ErrWrongSize reports a network declared with fewer than two layers.
var ErrWrongSize = mlp.ErrWrongSize

// WrongLayerSizeError reports a declared layer with no units.
type WrongLayerSizeError = mlp.WrongLayerSizeError

// WrongInputSizeError reports an input vector whose length does not match
// the declared input layer size.
type WrongInputSizeError = mlp.WrongInputSizeError
