package units_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/bhptsur/units"
	"github.com/katalvlaran/bhptsur/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoSet() waveform.Set {
	s := waveform.NewSet([]float64{-5000, -2500.5, 0, 37.25})
	s.Modes[waveform.Dominant] = []complex128{0.1 + 0.2i, -0.3, 1e-3i, 0.4 - 0.4i}
	s.Modes[waveform.Mode{L: 3, M: 3}] = []complex128{0.01, 0.02i, -0.03, 0}
	return s
}

func TestTimeScale(t *testing.T) {
	// one solar mass is ≈ 4.9255 µs
	assert.InDelta(t, 4.925491025543576e-6, units.TimeScale(1), 1e-17)
	assert.InDelta(t, 50*units.TimeScale(1), units.TimeScale(50), 1e-18)
}

func TestToPhysical(t *testing.T) {
	s := geoSet()
	out, err := units.ToPhysical(s, 50, 100)
	require.NoError(t, err)

	ts := units.TimeScale(50)
	hs := ts / (100 * units.MpcSI)
	for i, v := range s.Time {
		assert.Equal(t, v*ts, out.Time[i])
	}
	for md, h := range s.Modes {
		for i, v := range h {
			assert.Equal(t, v*complex(hs, 0), out.Modes[md][i])
		}
	}
}

// TestRoundTrip checks geometric → physical → geometric within 1e-12 relative.
func TestRoundTrip(t *testing.T) {
	s := geoSet()
	phys, err := units.ToPhysical(s, 63.7, 412.9)
	require.NoError(t, err)
	back, err := units.ToGeometric(phys, 63.7, 412.9)
	require.NoError(t, err)

	for i, v := range s.Time {
		if v == 0 {
			assert.Zero(t, back.Time[i])
			continue
		}
		assert.InEpsilon(t, v, back.Time[i], 1e-12)
	}
	for md, h := range s.Modes {
		for i, v := range h {
			diff := cmplx.Abs(back.Modes[md][i] - v)
			assert.LessOrEqual(t, diff, 1e-12*cmplx.Abs(v), "mode %s sample %d", md, i)
		}
	}
}

func TestInvalidPhysicalParams(t *testing.T) {
	for _, p := range [][2]float64{{0, 100}, {50, -1}, {math.NaN(), 1}, {math.Inf(1), 1}} {
		_, err := units.ToPhysical(geoSet(), p[0], p[1])
		assert.ErrorIs(t, err, units.ErrInvalidPhysicalParam)
		_, err = units.ToGeometric(geoSet(), p[0], p[1])
		assert.ErrorIs(t, err, units.ErrInvalidPhysicalParam)
	}
}
