// Copyright 2025 Strand ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides error functions pairing network outputs with a
// fixed target vector.
//
// Every loss satisfies deriv.NDeriv, so it plugs into both the nn
// combinator pipeline (through nn.ErrorBlock) and mlp backpropagation.
package loss

import (
	"github.com/strand-ml/strand/internal/loss"
)

// Squared sums the squared differences between the outputs and the target.
type Squared = loss.Squared

// Abs sums the absolute differences between the outputs and the target.
type Abs = loss.Abs
