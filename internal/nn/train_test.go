package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/deriv"
	"github.com/strand-ml/strand/internal/loss"
	"github.com/strand-ml/strand/internal/nn"
)

// TestPipeline_ConvergesToFixedTarget trains a small chained pipeline with
// a terminal squared-error block on a single fixed input and checks that
// the scalar error vanishes and the outputs reach the target.
func TestPipeline_ConvergesToFixedTarget(t *testing.T) {
	const rate = 0.5

	r := rand.New(rand.NewSource(3))
	weights, biases := nn.Uniform(r, -2, 2)

	layers := nn.NewChain[[]float64, []float64, []float64](
		nn.NewDense(2, 4, deriv.Sigmoid{}, weights, biases),
		nn.NewDense(4, 3, deriv.Sigmoid{}, weights, biases),
	)

	target := []float64{0.9, 0.2, 0.5}
	net := nn.NewChain[[]float64, []float64, float64](
		layers,
		nn.NewErrorBlock(loss.Squared{Target: target}),
	)

	input := []float64{0.5, -1}
	for i := 0; i < 20000; i++ {
		rec := net.Intermediate(input)
		require.False(t, math.IsNaN(rec.Output()), "error went non-finite at step %d", i)
		net.Train(input, rec, 1, rate)
	}

	rec := net.Intermediate(input).(*nn.ChainRecord[[]float64, float64])
	assert.Less(t, rec.Output(), 0.01, "final error too large")
	assert.InDeltaSlice(t, target, rec.First.Output(), 0.05)
}

// TestPipeline_ZippedBranchesConverge trains a zip of two independent
// dense stacks against a stacked target, exercising the full combinator
// surface in one pipeline.
func TestPipeline_ZippedBranchesConverge(t *testing.T) {
	const rate = 0.5

	r := rand.New(rand.NewSource(5))
	weights, biases := nn.Uniform(r, -2, 2)

	top := nn.NewDense(1, 2, deriv.Sigmoid{}, weights, biases)
	bot := nn.NewDense(2, 1, deriv.Sigmoid{}, weights, biases)

	zipper, unzipper := nn.Stacker(2)
	zipped := nn.NewZip[[]float64, []float64, []float64, []float64, []float64](top, bot, zipper, unzipper)

	target := []float64{0.8, 0.3, 0.6}
	net := nn.NewChain[nn.Pair[[]float64, []float64], []float64, float64](
		zipped,
		nn.NewErrorBlock(loss.Squared{Target: target}),
	)

	input := nn.Pair[[]float64, []float64]{Top: []float64{1.5}, Bot: []float64{-0.5, 0.25}}
	for i := 0; i < 20000; i++ {
		rec := net.Intermediate(input)
		net.Train(input, rec, 1, rate)
	}

	rec := net.Intermediate(input).(*nn.ChainRecord[[]float64, float64])
	assert.Less(t, rec.Output(), 0.01)
	assert.InDeltaSlice(t, target, rec.First.Output(), 0.05)
}
