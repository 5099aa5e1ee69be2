// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/strand-ml/strand/internal/deriv"
	"github.com/strand-ml/strand/internal/nn"
)

// Module is the base interface for all differentiable blocks.
type Module[In, Out any] = nn.Module[In, Out]

// Record holds whatever a module retained from one forward pass.
type Record[Out any] = nn.Record[Out]

// Pair carries the two halves of a Zip input or input gradient.
type Pair[A, B any] = nn.Pair[A, B]

// Eval evaluates a module and returns only its output.
func Eval[In, Out any](m Module[In, Out], input In) Out {
	return nn.Eval(m, input)
}

// Layers

// Dense is a fully connected layer.
type Dense = nn.Dense

// DenseRecord retains the weighted sums and outputs of one Dense forward pass.
type DenseRecord = nn.DenseRecord

// NewDense creates a fully connected layer with the given activation and
// generator functions.
//
// Example:
//
//	r := rand.New(rand.NewSource(1))
//	weights, biases := nn.Uniform(r, -2, 2)
//	layer := nn.NewDense(5, 3, deriv.Sigmoid{}, weights, biases)
func NewDense(in, out int, act deriv.Deriv, weights WeightGen, biases BiasGen) *Dense {
	return nn.NewDense(in, out, act, weights, biases)
}

// Composition

// Chain composes two modules sequentially.
type Chain[In, Mid, Out any] = nn.Chain[In, Mid, Out]

// ChainRecord holds the records of both stages of one Chain forward pass.
type ChainRecord[Mid, Out any] = nn.ChainRecord[Mid, Out]

// NewChain links first and second together, after each other.
func NewChain[In, Mid, Out any](first Module[In, Mid], second Module[Mid, Out]) *Chain[In, Mid, Out] {
	return nn.NewChain(first, second)
}

// Zip composes two modules in parallel with a merged output.
type Zip[InT, InB, OutT, OutB, Merged any] = nn.Zip[InT, InB, OutT, OutB, Merged]

// ZipRecord holds both branch records and the merged output of one Zip
// forward pass.
type ZipRecord[OutT, OutB, Merged any] = nn.ZipRecord[OutT, OutB, Merged]

// NewZip zips top and bot together into one module, merging their outputs
// with zipper. unzipper must do exactly the reverse of zipper.
func NewZip[InT, InB, OutT, OutB, Merged any](
	top Module[InT, OutT],
	bot Module[InB, OutB],
	zipper func(OutT, OutB) Merged,
	unzipper func(Merged) (OutT, OutB),
) *Zip[InT, InB, OutT, OutB, Merged] {
	return nn.NewZip(top, bot, zipper, unzipper)
}

// Stacker returns a zipper/unzipper pair concatenating two float64 vectors
// and splitting them back at topLen.
func Stacker(topLen int) (func([]float64, []float64) []float64, func([]float64) ([]float64, []float64)) {
	return nn.Stacker(topLen)
}

// ErrorBlock is a terminal module adapting a deriv.NDeriv loss to the
// Module contract.
type ErrorBlock = nn.ErrorBlock

// ScalarRecord is the intermediate record of a scalar-valued block.
type ScalarRecord = nn.ScalarRecord

// NewErrorBlock wraps fn as a terminal module.
func NewErrorBlock(fn deriv.NDeriv) *ErrorBlock {
	return nn.NewErrorBlock(fn)
}

// Initialization

// WeightGen generates an initial weight for the connection from input unit
// j to output unit i.
type WeightGen = nn.WeightGen

// BiasGen generates an initial bias for output unit i.
type BiasGen = nn.BiasGen

// Uniform returns generators drawing weights and biases uniformly from
// [lo, hi) using the given source.
func Uniform(r *rand.Rand, lo, hi float64) (WeightGen, BiasGen) {
	return nn.Uniform(r, lo, hi)
}

// Xavier returns Glorot-uniform weight generators for a layer with the
// given fan-in and fan-out, with zero biases.
func Xavier(r *rand.Rand, fanIn, fanOut int) (WeightGen, BiasGen) {
	return nn.Xavier(r, fanIn, fanOut)
}

// Zeros returns generators producing all-zero weights and biases.
func Zeros() (WeightGen, BiasGen) {
	return nn.Zeros()
}
