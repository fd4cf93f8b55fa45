package harmonics_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/bhptsur/harmonics"
	"github.com/katalvlaran/bhptsur/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-13

func assertComplex(t *testing.T, want, got complex128, msg ...interface{}) {
	t.Helper()
	assert.LessOrEqual(t, cmplx.Abs(want-got), tol, msg...)
}

// TestClosedForms compares against the explicit s = −2 expressions.
func TestClosedForms(t *testing.T) {
	th, ph := 0.7, 0.3
	c, s := math.Cos(th/2), math.Sin(th/2)
	e := func(m float64) complex128 { return cmplx.Exp(complex(0, m*ph)) }

	cases := []struct {
		l, m int
		want complex128
	}{
		{2, 2, complex(math.Sqrt(5/(64*math.Pi))*math.Pow(1+math.Cos(th), 2), 0) * e(2)},
		{2, 1, complex(math.Sqrt(5/(16*math.Pi))*math.Sin(th)*(1+math.Cos(th)), 0) * e(1)},
		{2, 0, complex(math.Sqrt(15/(32*math.Pi))*math.Sin(th)*math.Sin(th), 0)},
		{2, -1, complex(math.Sqrt(5/(16*math.Pi))*math.Sin(th)*(1-math.Cos(th)), 0) * e(-1)},
		{2, -2, complex(math.Sqrt(5/(64*math.Pi))*math.Pow(1-math.Cos(th), 2), 0) * e(-2)},
		{3, 3, complex(-math.Sqrt(21/(2*math.Pi))*math.Pow(c, 5)*s, 0) * e(3)},
		{3, 2, complex(math.Sqrt(7/math.Pi)*math.Pow(c, 4)*(3*math.Cos(th)-2)/2, 0) * e(2)},
	}
	for _, tc := range cases {
		got := harmonics.SpinWeightedYlm(-2, tc.l, tc.m, th, ph)
		assertComplex(t, tc.want, got, "(%d,%d)", tc.l, tc.m)
	}
}

func TestSpinZero(t *testing.T) {
	th := 1.1
	assertComplex(t, complex(math.Sqrt(3/(4*math.Pi))*math.Cos(th), 0),
		harmonics.SpinWeightedYlm(0, 1, 0, th, 0.4))
}

// TestConjugation checks conj(ₛYₗₘ) = (−1)^(s+m) ₋ₛYₗ₋ₘ.
func TestConjugation(t *testing.T) {
	th, ph := 2.3, -0.9
	for l := 2; l <= 8; l++ {
		for m := -l; m <= l; m++ {
			lhs := cmplx.Conj(harmonics.SpinWeightedYlm(-2, l, m, th, ph))
			rhs := harmonics.SpinWeightedYlm(2, l, -m, th, ph)
			if (m%2+2)%2 == 1 {
				rhs = -rhs
			}
			assertComplex(t, lhs, rhs, "(%d,%d)", l, m)
		}
	}
}

// TestNormalization integrates |₋₂Yₗₘ|² over the sphere with the midpoint rule.
func TestNormalization(t *testing.T) {
	const n = 2000
	for _, md := range [][2]int{{2, 2}, {3, 1}, {4, -3}, {5, 0}, {8, 8}} {
		var sum float64
		for i := 0; i < n; i++ {
			th := (float64(i) + 0.5) * math.Pi / n
			y := cmplx.Abs(harmonics.SpinWeightedYlm(-2, md[0], md[1], th, 0))
			sum += y * y * math.Sin(th) * math.Pi / n
		}
		assert.InDelta(t, 1.0, 2*math.Pi*sum, 1e-6, "%v", md)
	}
}

func TestOutOfRangeIndices(t *testing.T) {
	assert.Zero(t, harmonics.SpinWeightedYlm(-2, 1, 0, 0.3, 0))
	assert.Zero(t, harmonics.SpinWeightedYlm(-2, 2, 3, 0.3, 0))
}

func projectedSet() waveform.Set {
	s := waveform.NewSet([]float64{0, 1, 2})
	s.Modes[waveform.Dominant] = []complex128{1, 1i, -1}
	s.Modes[waveform.Mode{L: 2, M: -2}] = []complex128{1, -1i, -1}
	s.Modes[waveform.Mode{L: 3, M: 3}] = []complex128{0.5, 0.5, 0.5}
	return s
}

func TestProject(t *testing.T) {
	s := projectedSet()
	incl, phase := math.Pi/4, math.Pi/3
	out := harmonics.Project(s, incl, phase)

	require.Len(t, out.Modes, 3)
	for md, h := range s.Modes {
		y := harmonics.SpinWeightedYlm(-2, md.L, md.M, incl, phase)
		for i, v := range h {
			assert.Equal(t, v*y, out.Modes[md][i])
		}
	}
	// input untouched
	assert.Equal(t, complex128(1i), s.Modes[waveform.Dominant][1])
}

func TestSum(t *testing.T) {
	got, err := harmonics.Sum(projectedSet())
	require.NoError(t, err)
	assert.Equal(t, []complex128{2.5, 0.5, -1.5}, got)
}

func TestSum_WithoutDominant(t *testing.T) {
	s := projectedSet()
	delete(s.Modes, waveform.Dominant)
	got, err := harmonics.Sum(s)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1.5, 0.5 - 1i, -0.5}, got)

	got, err = harmonics.Sum(waveform.NewSet([]float64{0, 1}))
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0}, got)
}

func TestSum_LengthMismatch(t *testing.T) {
	s := projectedSet()
	s.Modes[waveform.Mode{L: 4, M: 4}] = []complex128{1}
	_, err := harmonics.Sum(s)
	assert.ErrorIs(t, err, waveform.ErrLengthMismatch)
}
