package loss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/strand-ml/strand/internal/loss"
)

func TestSquared_Call(t *testing.T) {
	l := loss.Squared{Target: []float64{1, 2}}

	// (2-1)² + (4-2)² = 5
	assert.InDelta(t, 5.0, l.Call([]float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, l.Call([]float64{1, 2}), 1e-12)
}

func TestSquared_Deriv(t *testing.T) {
	l := loss.Squared{Target: []float64{1, 2}}
	x := []float64{2, 4}

	assert.InDelta(t, 2.0, l.Deriv(x, 0), 1e-12)
	assert.InDelta(t, 4.0, l.Deriv(x, 1), 1e-12)
}

func TestAbs_Call(t *testing.T) {
	l := loss.Abs{Target: []float64{1, 2}}

	// |0-1| + |4-2| = 3
	assert.InDelta(t, 3.0, l.Call([]float64{0, 4}), 1e-12)
}

func TestAbs_Deriv(t *testing.T) {
	l := loss.Abs{Target: []float64{1, 2}}
	x := []float64{0, 4}

	assert.InDelta(t, -1.0, l.Deriv(x, 0), 1e-12)
	assert.InDelta(t, 2.0, l.Deriv(x, 1), 1e-12)
}

// TestSquared_LargeVector exercises the parallel reduction path and checks
// it against a plain sequential sum.
func TestSquared_LargeVector(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	n := 5000
	target := make([]float64, n)
	x := make([]float64, n)
	for i := range x {
		target[i] = r.NormFloat64()
		x[i] = r.NormFloat64()
	}

	l := loss.Squared{Target: target}

	diff := make([]float64, n)
	floats.SubTo(diff, x, target)
	want := floats.Dot(diff, diff)

	require.InDelta(t, want, l.Call(x), 1e-9)
}
