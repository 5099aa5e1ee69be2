// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package deriv provides differentiable functions and the activation catalog.
//
// A Deriv pairs a scalar pure function with its derivative; an NDeriv is
// the multi-input analogue with per-input partial derivatives. Activations
// and losses across the framework are expressed through these contracts.
package deriv

import (
	"github.com/strand-ml/strand/internal/deriv"
)

// Deriv is a one-dimensional pure function with its derivative.
type Deriv = deriv.Deriv

// NDeriv is a multi-input pure function with partial derivatives.
type NDeriv = deriv.NDeriv

// Func adapts a pair of closures into a Deriv.
type Func = deriv.Func

// Activations

// LeakyReLU is the leaky rectified linear unit activation function.
type LeakyReLU = deriv.LeakyReLU

// Sigmoid is the logistic activation function.
type Sigmoid = deriv.Sigmoid

// Tanh is the hyperbolic tangent activation function.
type Tanh = deriv.Tanh

// Identity passes inputs through unchanged.
type Identity = deriv.Identity
