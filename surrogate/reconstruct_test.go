package surrogate

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/bhptsur/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReconstructMode_Conventions checks each composition and conj(h)·norm.
func TestReconstructMode_Conventions(t *testing.T) {
	dp1 := []float64{2, 0.5}
	dp2 := []float64{0.3, -1.2}
	phase := []float64{0.1, 0.7}
	norm := 0.125
	md := waveform.Mode{L: 3, M: 3}

	got, err := reconstructMode(dp1, dp2, AmpPhase, md, nil, norm)
	require.NoError(t, err)
	for i := range dp1 {
		want := cmplx.Conj(complex(dp1[i], 0)*cmplx.Exp(complex(0, dp2[i]))) * complex(norm, 0)
		assert.Equal(t, want, got[i])
	}

	got, err = reconstructMode(dp1, dp2, ReIm, md, nil, norm)
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(0.25, -0.0375), complex(0.0625, 0.15)}, got)

	got, err = reconstructMode(dp1, dp2, ReImInline, md, phase, norm)
	require.NoError(t, err)
	for i := range dp1 {
		want := cmplx.Conj(complex(dp1[i], dp2[i])*cmplx.Exp(complex(0, 3*phase[i]))) * complex(norm, 0)
		assert.Equal(t, want, got[i])
	}
}

func TestReconstructMode_Errors(t *testing.T) {
	md := waveform.Mode{L: 2, M: 1}
	_, err := reconstructMode([]float64{1}, []float64{1, 2}, ReIm, md, nil, 1)
	assert.ErrorIs(t, err, waveform.ErrLengthMismatch)

	_, err = reconstructMode([]float64{1}, []float64{1}, ReImInline, md, nil, 1)
	assert.ErrorIs(t, err, waveform.ErrLengthMismatch)

	_, err = reconstructMode([]float64{1}, []float64{1}, Composition(7), md, nil, 1)
	assert.ErrorIs(t, err, ErrUnknownComposition)
}

func TestSelectModes(t *testing.T) {
	in := []waveform.Mode{{L: 3, M: 3}, {L: 6, M: 6}, {L: 2, M: 2}, {L: 3, M: 3}, {L: 2, M: 1}}
	got := selectModes(in, 5)
	assert.Equal(t, []waveform.Mode{{L: 2, M: 2}, {L: 3, M: 3}, {L: 2, M: 1}}, got)
	assert.Empty(t, selectModes([]waveform.Mode{{L: 6, M: 6}}, 5))
}

func TestParameterization(t *testing.T) {
	x, err := Log10QSpin.Apply(100, -0.4)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -0.4}, x)

	x, err = InverseQ.Apply(8, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.125}, x)

	_, err = Parameterization("sqrt_q").Apply(4, 0)
	assert.ErrorIs(t, err, ErrUnknownParameterization)
	assert.Equal(t, 0, Parameterization("sqrt_q").Dim())
}

func TestNormalization(t *testing.T) {
	f, err := NormInverseQ.Factor(4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)
	f, err = NormUnity.Factor(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
	_, err = Normalization("sqrt").Factor(4)
	assert.ErrorIs(t, err, ErrBadVariant)
}

func TestComposition_Parse(t *testing.T) {
	for _, c := range []Composition{AmpPhase, ReIm, ReImInline} {
		got, err := ParseComposition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseComposition("polar")
	assert.ErrorIs(t, err, ErrUnknownComposition)
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Negative, SignOf(-1e-9))
	assert.Equal(t, Positive, SignOf(0))
	assert.Equal(t, Positive, SignOf(math.Copysign(0, -1)))
	assert.Equal(t, "negative_spin", Negative.String())
}
