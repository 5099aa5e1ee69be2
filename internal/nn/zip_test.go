package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/deriv"
	"github.com/strand-ml/strand/internal/nn"
)

func TestStacker_RoundTrip(t *testing.T) {
	zip, unzip := nn.Stacker(2)

	a := []float64{1, 2}
	b := []float64{3, 4, 5}

	merged := zip(a, b)
	require.Equal(t, []float64{1, 2, 3, 4, 5}, merged)

	gotA, gotB := unzip(merged)
	assert.Equal(t, a, gotA)
	assert.Equal(t, b, gotB)
}

func TestStacker_EmptyHalves(t *testing.T) {
	zip, unzip := nn.Stacker(0)

	merged := zip(nil, []float64{7})
	gotA, gotB := unzip(merged)

	assert.Empty(t, gotA)
	assert.Equal(t, []float64{7}, gotB)
}

// scaleLayer builds a 1→1 layer with a single known weight and bias.
func scaleLayer(weight, bias float64) *nn.Dense {
	return nn.NewDense(1, 1, deriv.Identity{},
		func(_, _ int) float64 { return weight },
		func(_ int) float64 { return bias },
	)
}

func newStackedZip(top, bot *nn.Dense, topLen int) *nn.Zip[[]float64, []float64, []float64, []float64, []float64] {
	zipper, unzipper := nn.Stacker(topLen)
	return nn.NewZip[[]float64, []float64, []float64, []float64, []float64](top, bot, zipper, unzipper)
}

func TestZip_Intermediate(t *testing.T) {
	z := newStackedZip(scaleLayer(2, 0), scaleLayer(3, 1), 1)

	input := nn.Pair[[]float64, []float64]{Top: []float64{0.5}, Bot: []float64{1}}
	rec := z.Intermediate(input)

	// top: 2*0.5 = 1, bot: 3*1 + 1 = 4.
	assert.InDeltaSlice(t, []float64{1, 4}, rec.Output(), 1e-12)

	zr := rec.(*nn.ZipRecord[[]float64, []float64, []float64])
	assert.InDeltaSlice(t, []float64{1}, zr.Top.Output(), 1e-12)
	assert.InDeltaSlice(t, []float64{4}, zr.Bot.Output(), 1e-12)
}

func TestZip_Train(t *testing.T) {
	top := scaleLayer(2, 0)
	bot := scaleLayer(3, 1)
	z := newStackedZip(top, bot, 1)

	input := nn.Pair[[]float64, []float64]{Top: []float64{0.5}, Bot: []float64{1}}
	rec := z.Intermediate(input)

	inGrad := z.Train(input, rec, []float64{0.1, 0.2}, 0.1)

	// Input gradients from pre-update weights.
	assert.InDeltaSlice(t, []float64{0.2}, inGrad.Top, 1e-12)
	assert.InDeltaSlice(t, []float64{0.6}, inGrad.Bot, 1e-12)

	// weight -= rate * input * grad, bias -= rate * grad.
	assert.InDelta(t, 1.995, top.Weight().At(0, 0), 1e-12)
	assert.InDelta(t, -0.01, top.Bias().AtVec(0), 1e-12)
	assert.InDelta(t, 2.98, bot.Weight().At(0, 0), 1e-12)
	assert.InDelta(t, 0.98, bot.Bias().AtVec(0), 1e-12)
}

// TestZip_ConcurrentMatchesSequential trains two identically initialized
// zips, one with concurrent branch training, and requires identical
// parameters afterwards: the branches own disjoint parameters.
func TestZip_ConcurrentMatchesSequential(t *testing.T) {
	build := func() (*nn.Dense, *nn.Dense, *nn.Zip[[]float64, []float64, []float64, []float64, []float64]) {
		r := rand.New(rand.NewSource(21))
		weights, biases := nn.Uniform(r, -1, 1)
		top := nn.NewDense(2, 3, deriv.Sigmoid{}, weights, biases)
		bot := nn.NewDense(1, 2, deriv.Sigmoid{}, weights, biases)
		return top, bot, newStackedZip(top, bot, 3)
	}

	topSeq, botSeq, seq := build()
	topCon, botCon, con := build()
	con.Concurrent = true

	input := nn.Pair[[]float64, []float64]{Top: []float64{0.3, -0.4}, Bot: []float64{0.9}}
	grad := []float64{0.1, -0.2, 0.3, -0.4, 0.5}

	for i := 0; i < 100; i++ {
		sr := seq.Intermediate(input)
		cr := con.Intermediate(input)

		sg := seq.Train(input, sr, grad, 0.05)
		cg := con.Train(input, cr, grad, 0.05)
		require.Equal(t, sg, cg, "input gradients diverged at step %d", i)
	}

	require.Equal(t, topSeq.Weight().RawMatrix().Data, topCon.Weight().RawMatrix().Data)
	require.Equal(t, botSeq.Weight().RawMatrix().Data, botCon.Weight().RawMatrix().Data)
	require.Equal(t, topSeq.Bias().RawVector().Data, topCon.Bias().RawVector().Data)
	require.Equal(t, botSeq.Bias().RawVector().Data, botCon.Bias().RawVector().Data)
}
