package fits_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bhptsur/fits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// quadraticSpline is x² as a cubic B-spline with one interior knot at 0.5.
func quadraticSpline() fits.Spline {
	return fits.Spline{
		Knots:  []float64{0, 0, 0, 0, 0.5, 1, 1, 1, 1},
		Coeffs: []float64{0, 0, 1.0 / 6, 2.0 / 3, 1, 0, 0, 0, 0}, // FITPACK pads to len(t)
		Degree: 3,
	}
}

func constantSpline(v float64) fits.Spline {
	return fits.Spline{Knots: []float64{0, 0, 1, 1}, Coeffs: []float64{v, v}, Degree: 1}
}

func TestSpline_Eval(t *testing.T) {
	s := quadraticSpline()
	require.NoError(t, s.Validate())

	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999} {
		assert.InDelta(t, x*x, s.Eval(x), tol, "x=%g", x)
	}
	// end pieces extrapolate
	assert.InDelta(t, 4.0, s.Eval(2), 1e-10)
	assert.InDelta(t, 0.25, s.Eval(-0.5), 1e-10)
	assert.InDelta(t, 1.0, s.Eval(1), tol)
}

func TestSpline_LinearPrecision(t *testing.T) {
	s := fits.Spline{
		Knots:  []float64{0, 0, 0, 0, 1, 1, 1, 1},
		Coeffs: []float64{0, 1.0 / 3, 2.0 / 3, 1},
		Degree: 3,
	}
	require.NoError(t, s.Validate())
	for _, x := range []float64{-1, 0, 0.3, 0.6, 1, 1.5} {
		assert.InDelta(t, x, s.Eval(x), 1e-12, "x=%g", x)
	}
}

func TestSpline_Validate(t *testing.T) {
	bad := []fits.Spline{
		{Knots: []float64{0, 1}, Coeffs: []float64{1}, Degree: 1},
		{Knots: []float64{0, 0, 1, 1}, Coeffs: []float64{1}, Degree: 1},
		{Knots: []float64{0, 0, 1, 1}, Coeffs: []float64{1, 1}, Degree: -1},
		{Knots: []float64{1, 1, 0, 0}, Coeffs: []float64{1, 1}, Degree: 1},
		{Knots: []float64{0, 0, 0, 0}, Coeffs: []float64{1, 1}, Degree: 1},
	}
	for i, s := range bad {
		assert.ErrorIs(t, s.Validate(), fits.ErrBadSpline, "case %d", i)
	}

	nan := fits.Spline{Knots: []float64{0, 0, 1, 1}, Coeffs: []float64{math.NaN(), 1}, Degree: 1}
	assert.ErrorIs(t, nan.Validate(), fits.ErrNaNInf)
}

func singlePointGPR() fits.GPR {
	return fits.GPR{
		XTrain:       mat.NewDense(1, 1, []float64{0.3}),
		Alpha:        []float64{0.5},
		YTrainMean:   0.1,
		Constant:     2,
		LengthScale:  []float64{1},
		NoiseLevel:   1e-6,
		DataMean:     1,
		DataStd:      2,
		LinCoef:      []float64{3},
		LinIntercept: -1,
	}
}

func TestGPR_Predict(t *testing.T) {
	g := singlePointGPR()
	require.NoError(t, g.Validate())

	// at the training point the kernel equals the constant
	assert.InDelta(t, 3.1, g.Predict([]float64{0.3}), tol)

	// one length scale away
	k := 2 * math.Exp(-0.5)
	want := (k*0.5+0.1)*2 + 1 + 3*1.3 - 1
	assert.InDelta(t, want, g.Predict([]float64{1.3}), tol)
}

func TestGPR_Anisotropic(t *testing.T) {
	g := fits.GPR{
		XTrain:      mat.NewDense(2, 2, []float64{0, 0, 1, 1}),
		Alpha:       []float64{1, -1},
		Constant:    1,
		LengthScale: []float64{1, 2},
		DataStd:     1,
	}
	require.NoError(t, g.Validate())

	x := []float64{0.5, 0.5}
	d0 := 0.5*0.5 + 0.25*0.25
	d1 := 0.5*0.5 + 0.25*0.25
	want := math.Exp(-0.5*d0) - math.Exp(-0.5*d1)
	assert.InDelta(t, want, g.Predict(x), tol)
}

func TestGPR_Validate(t *testing.T) {
	g := singlePointGPR()
	g.Alpha = []float64{1, 2}
	assert.ErrorIs(t, g.Validate(), fits.ErrShapeMismatch)

	g = singlePointGPR()
	g.DataStd = 0
	assert.ErrorIs(t, g.Validate(), fits.ErrBadGPR)

	g = singlePointGPR()
	g.LengthScale = []float64{-1}
	assert.ErrorIs(t, g.Validate(), fits.ErrBadGPR)

	g = singlePointGPR()
	g.XTrain = nil
	assert.ErrorIs(t, g.Validate(), fits.ErrBadGPR)
}

func TestEvaluateDatapiece_Spline(t *testing.T) {
	rec := &fits.Record{
		Kind:    fits.KindSpline,
		Nodes:   []int{0, 2},
		Splines: []fits.Spline{constantSpline(2), quadraticSpline()},
	}
	require.NoError(t, rec.Validate())

	basis := mat.NewDense(2, 3, []float64{
		1, 0.5, 0,
		0, 0.5, 1,
	})
	got, err := fits.EvaluateDatapiece([]float64{0.5}, rec, basis)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1.125, 0.25}, got, tol)
}

func TestEvaluateDatapiece_GPR(t *testing.T) {
	rec := &fits.Record{
		Kind:  fits.KindGPR,
		Nodes: []int{1},
		GPRs:  []fits.GPR{singlePointGPR()},
	}
	require.NoError(t, rec.Validate())
	basis := mat.NewDense(1, 2, []float64{1, -1})

	got, err := fits.EvaluateDatapiece([]float64{0.3}, rec, basis)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.1, -3.1}, got, tol)

	_, err = fits.EvaluateDatapiece([]float64{0.3, 0.1}, rec, basis)
	assert.ErrorIs(t, err, fits.ErrDimension)
}

func TestEvaluateDatapiece_Errors(t *testing.T) {
	rec := &fits.Record{Kind: fits.KindSpline, Nodes: []int{0}, Splines: []fits.Spline{constantSpline(1)}}

	_, err := fits.EvaluateDatapiece([]float64{0}, rec, nil)
	assert.ErrorIs(t, err, fits.ErrNilBasis)

	_, err = fits.EvaluateDatapiece([]float64{0}, rec, mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, fits.ErrShapeMismatch)

	_, err = fits.EvaluateDatapiece(nil, rec, mat.NewDense(1, 2, nil))
	assert.ErrorIs(t, err, fits.ErrDimension)

	_, err = fits.EvaluateDatapiece([]float64{math.Inf(1)}, rec, mat.NewDense(1, 2, nil))
	assert.ErrorIs(t, err, fits.ErrNaNInf)

	unknown := &fits.Record{Kind: fits.Kind(7), Nodes: []int{0}}
	assert.ErrorIs(t, unknown.Validate(), fits.ErrUnknownFitKind)
	_, err = unknown.EvalNodes([]float64{1})
	assert.ErrorIs(t, err, fits.ErrUnknownFitKind)
}

func TestParseKind(t *testing.T) {
	k, err := fits.ParseKind("spline_1d")
	require.NoError(t, err)
	assert.Equal(t, fits.KindSpline, k)

	k, err = fits.ParseKind("GPR_fits")
	require.NoError(t, err)
	assert.Equal(t, fits.KindGPR, k)
	assert.Equal(t, "gpr", k.String())

	_, err = fits.ParseKind("rbf")
	assert.ErrorIs(t, err, fits.ErrUnknownFitKind)
}
