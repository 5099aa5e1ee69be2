// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides composable differentiable modules.
//
// # Overview
//
// This package contains:
//   - Module and Record: the forward/backward contract every block satisfies
//   - Dense: fully connected layer
//   - Chain, Zip: sequential and parallel composition
//   - ErrorBlock: terminal loss block
//   - Initialization: Uniform, Xavier, Zeros
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/strand-ml/strand/deriv"
//	    "github.com/strand-ml/strand/loss"
//	    "github.com/strand-ml/strand/nn"
//	)
//
//	func main() {
//	    r := rand.New(rand.NewSource(1))
//	    weights, biases := nn.Uniform(r, -2, 2)
//
//	    // Build a two-layer pipeline ending in a squared-error block.
//	    layers := nn.NewChain[[]float64, []float64, []float64](
//	        nn.NewDense(2, 4, deriv.Sigmoid{}, weights, biases),
//	        nn.NewDense(4, 1, deriv.Sigmoid{}, weights, biases),
//	    )
//	    net := nn.NewChain[[]float64, []float64, float64](
//	        layers,
//	        nn.NewErrorBlock(loss.Squared{Target: []float64{0.5}}),
//	    )
//
//	    input := []float64{1, 0}
//	    for i := 0; i < 10000; i++ {
//	        rec := net.Intermediate(input)
//	        net.Train(input, rec, 1, 0.5)
//	    }
//	}
//
// Training walks the structure backwards: each module updates its own
// parameters in place and hands the gradient over its inputs to its
// predecessor.
package nn
