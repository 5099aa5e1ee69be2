package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strand-ml/strand/internal/loss"
	"github.com/strand-ml/strand/internal/nn"
)

func TestErrorBlock_Intermediate(t *testing.T) {
	block := nn.NewErrorBlock(loss.Squared{Target: []float64{1, 2}})

	rec := block.Intermediate([]float64{2, 4})

	// (2-1)² + (4-2)² = 5
	assert.InDelta(t, 5.0, rec.Output(), 1e-12)
}

func TestErrorBlock_TrainReturnsPartials(t *testing.T) {
	block := nn.NewErrorBlock(loss.Squared{Target: []float64{1, 2}})

	input := []float64{2, 4}
	rec := block.Intermediate(input)

	// The incoming gradient is ignored: the block is terminal.
	grad := block.Train(input, rec, 123.0, 0.5)

	assert.InDeltaSlice(t, []float64{2, 4}, grad, 1e-12)
}

func TestErrorBlock_AbsPartials(t *testing.T) {
	block := nn.NewErrorBlock(loss.Abs{Target: []float64{1, 0}})

	input := []float64{0.5, 0.25}
	grad := block.Train(input, block.Intermediate(input), 1, 0.1)

	assert.InDeltaSlice(t, []float64{-0.5, 0.25}, grad, 1e-12)
}
