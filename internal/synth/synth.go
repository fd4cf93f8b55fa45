// Package synth builds small, deterministic fit data for any surrogate
// variant. Tests and the CLI demo use it in place of a trained archive.
//
// Every datapiece has two EIM nodes and the basis rows [1, t/|t₀|], so a
// datapiece is node₀ + node₁·t/|t₀|. Node values depend linearly on the
// first fit coordinate, which keeps the (2,2) phase monotonic and the
// amplitude positive over the whole training box.
package synth

import (
	"math"

	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/fits"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/waveform"
	"gonum.org/v1/gonum/mat"
)

// DefaultSamples is the time grid length used by Data.
const DefaultSamples = 256

// DefaultStart is the first sample of the time grid, in units of M.
const DefaultStart = -5000.0

// node is a linear function base + slope·x₀.
type node struct{ base, slope float64 }

// TimeGrid returns n samples from start to 0.
func TimeGrid(n int, start float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = start + (0-start)*float64(i)/float64(n-1)
	}
	return t
}

// Basis returns the 2×n EIM basis [1, t/|t₀|].
func Basis(time []float64) *mat.Dense {
	n := len(time)
	b := mat.NewDense(2, n, nil)
	scale := math.Abs(time[0])
	for j, t := range time {
		b.Set(0, j, 1)
		b.Set(1, j, t/scale)
	}
	return b
}

func record(kind fits.Kind, dim int, nodes [2]node) *fits.Record {
	rec := &fits.Record{Kind: kind, Nodes: []int{0, 1}}
	for _, nd := range nodes {
		switch kind {
		case fits.KindSpline:
			// linear B-spline on [−1, 5] equal to base + slope·x
			rec.Splines = append(rec.Splines, fits.Spline{
				Knots:  []float64{-1, -1, 5, 5},
				Coeffs: []float64{nd.base - nd.slope, nd.base + 5*nd.slope},
				Degree: 1,
			})
		case fits.KindGPR:
			lin := make([]float64, dim)
			lin[0] = nd.slope
			ls := make([]float64, dim)
			for i := range ls {
				ls[i] = 50
			}
			rec.GPRs = append(rec.GPRs, fits.GPR{
				XTrain:      mat.NewDense(1, dim, nil),
				Alpha:       []float64{nd.base},
				Constant:    1,
				LengthScale: ls,
				NoiseLevel:  1e-10,
				DataStd:     1,
				LinCoef:     lin,
			})
		}
	}
	return rec
}

func modeNodes(md waveform.Mode, comp surrogate.Composition) (first, second [2]node) {
	l, m := float64(md.L), float64(md.M)
	switch {
	case md == waveform.Dominant || comp == surrogate.AmpPhase:
		// amplitude falls with l, phase winds m/2 times the (2,2) rate
		first = [2]node{{0.4 / (l - 1), 0.01}, {0.15 / (l - 1), 0}}
		second = [2]node{{0.3 * m, 0}, {20 * m, 0.5 * m}}
	default:
		first = [2]node{{0.05 / l, 0.002}, {0.01 * m, 0}}
		second = [2]node{{-0.02 * m / l, 0.001}, {0.005, 0}}
	}
	return first, second
}

// Grid builds fit data for every mode of v over time.
func Grid(v surrogate.Variant, time []float64) *surrogate.Grid {
	basis := Basis(time)
	g := &surrogate.Grid{Time: time, Modes: make(map[waveform.Mode]surrogate.ModeData, len(v.Modes))}
	for _, md := range v.Modes {
		comp := v.Higher
		if md == waveform.Dominant {
			comp = v.Dominant
		}
		n1, n2 := modeNodes(md, comp)
		g.Modes[md] = surrogate.ModeData{
			First:  surrogate.Datapiece{Fit: record(v.FitKind, v.FitParams.Dim(), n1), Basis: basis},
			Second: surrogate.Datapiece{Fit: record(v.FitKind, v.FitParams.Dim(), n2), Basis: basis},
		}
	}
	return g
}

// Calibration returns a calibration table for form f covering l ≤ maxL with
// small, l-dependent coefficients.
func Calibration(f calibration.Form, maxL int) calibration.Config {
	c := calibration.Config{
		Form:           f,
		AlphaCoeffs:    make(map[waveform.Mode][]float64),
		BetaCoeffs:     make([]float64, f.Arity),
		MaxCalibratedL: maxL,
	}
	for l := 2; l <= maxL; l++ {
		coeffs := make([]float64, f.Arity)
		coeffs[0] = -0.1 * float64(l)
		if f.Arity > 1 {
			coeffs[1] = 0.02
		}
		c.AlphaCoeffs[waveform.Mode{L: l, M: l}] = coeffs
	}
	c.BetaCoeffs[0] = -0.05
	return c
}

// IdentityCalibration returns a table whose alpha and beta are exactly 1.
func IdentityCalibration(f calibration.Form, maxL int) calibration.Config {
	c := Calibration(f, maxL)
	for md := range c.AlphaCoeffs {
		c.AlphaCoeffs[md] = make([]float64, f.Arity)
	}
	c.BetaCoeffs = make([]float64, f.Arity)
	return c
}

// Data builds complete synthetic data for v. Spin-dependent variants get a
// negative-spin grid that starts later than the positive one, so tests can
// tell them apart.
func Data(v surrogate.Variant, cal calibration.Config) surrogate.Data {
	d := surrogate.Data{
		Grids:       map[surrogate.SpinSign]*surrogate.Grid{surrogate.Positive: Grid(v, TimeGrid(DefaultSamples, DefaultStart))},
		Calibration: cal,
	}
	if v.SpinDependent {
		d.Grids[surrogate.Negative] = Grid(v, TimeGrid(DefaultSamples, DefaultStart/2))
	}
	return d
}
