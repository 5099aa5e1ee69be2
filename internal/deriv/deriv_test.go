package deriv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

// checkDeriv verifies the derivative contract numerically: Deriv(x) must
// match a central-difference estimate of Call at x.
func checkDeriv(t *testing.T, name string, d Deriv, points []float64) {
	t.Helper()

	settings := &fd.Settings{Formula: fd.Central}
	for _, x := range points {
		want := fd.Derivative(d.Call, x, settings)
		got := d.Deriv(x)
		assert.InDelta(t, want, got, 1e-6, "%s derivative mismatch at x=%v", name, x)
	}
}

func TestLeakyReLU_Deriv(t *testing.T) {
	// Skip x=0: the rectifier has a kink there.
	points := []float64{-3, -0.5, 0.25, 1, 7}
	checkDeriv(t, "LeakyReLU(0.1)", LeakyReLU{Alpha: 0.1}, points)
	checkDeriv(t, "LeakyReLU(0.01)", LeakyReLU{Alpha: 0.01}, points)
}

func TestSigmoid_Deriv(t *testing.T) {
	checkDeriv(t, "Sigmoid", Sigmoid{}, []float64{-4, -1, 0, 0.5, 2, 6})
}

func TestTanh_Deriv(t *testing.T) {
	checkDeriv(t, "Tanh", Tanh{}, []float64{-3, -1, 0, 0.1, 1.5, 4})
}

func TestIdentity_Deriv(t *testing.T) {
	checkDeriv(t, "Identity", Identity{}, []float64{-10, 0, 3})
}

func TestFunc_Adapter(t *testing.T) {
	square := Func{
		F: func(x float64) float64 { return x * x },
		D: func(x float64) float64 { return 2 * x },
	}

	assert.Equal(t, 9.0, square.Call(3))
	assert.Equal(t, 6.0, square.Deriv(3))
	checkDeriv(t, "square", square, []float64{-2, 0, 1, 5})
}

func TestSigmoid_Range(t *testing.T) {
	s := Sigmoid{}
	for _, x := range []float64{-30, -1, 0, 1, 30} {
		y := s.Call(x)
		assert.Greater(t, y, 0.0)
		assert.Less(t, y, 1.0)
	}
	assert.InDelta(t, 0.5, s.Call(0), 1e-12)
}
