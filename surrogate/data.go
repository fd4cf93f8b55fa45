// SPDX-License-Identifier: MIT

package surrogate

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/fits"
	"github.com/katalvlaran/bhptsur/waveform"
	"gonum.org/v1/gonum/mat"
)

// Datapiece is one fitted real series of a mode: node fits plus the EIM
// basis (nodes × samples) that lifts them onto the time grid.
type Datapiece struct {
	Fit   *fits.Record
	Basis *mat.Dense
}

// Eval evaluates the datapiece at x.
func (d Datapiece) Eval(x []float64) ([]float64, error) {
	return fits.EvaluateDatapiece(x, d.Fit, d.Basis)
}

// ModeData holds the two datapieces of a mode, e.g. amplitude and phase.
type ModeData struct {
	First  Datapiece
	Second Datapiece
}

// Grid is the fit data trained on one time axis.
type Grid struct {
	Time  []float64
	Modes map[waveform.Mode]ModeData
}

// Data is everything a Model evaluates. Non-spinning variants use only
// Grids[Positive].
type Data struct {
	Grids       map[SpinSign]*Grid
	Calibration calibration.Config
}

func (d Datapiece) validate(kind fits.Kind, samples, dim int) error {
	if d.Fit == nil {
		return fmt.Errorf("fit record: %w", ErrMissingData)
	}
	if d.Basis == nil {
		return fmt.Errorf("basis: %w", fits.ErrNilBasis)
	}
	if d.Fit.Kind != kind {
		return fmt.Errorf("got %s, want %s: %w", d.Fit.Kind, kind, ErrFitKindMismatch)
	}
	if err := d.Fit.Validate(); err != nil {
		return err
	}
	for j := range d.Fit.GPRs {
		if got := d.Fit.GPRs[j].Dim(); got != dim {
			return fmt.Errorf("node %d GPR takes %d params, want %d: %w", j, got, dim, fits.ErrDimension)
		}
	}
	r, c := d.Basis.Dims()
	if r != d.Fit.NumNodes() || c != samples {
		return fmt.Errorf("basis is %d×%d, want %d×%d: %w", r, c, d.Fit.NumNodes(), samples, ErrBasisShape)
	}

	return nil
}

func (g *Grid) validate(v Variant) error {
	if len(g.Time) == 0 {
		return fmt.Errorf("empty time grid: %w", ErrMissingData)
	}
	for _, md := range v.Modes {
		m, ok := g.Modes[md]
		if !ok {
			return fmt.Errorf("mode %s: %w", md, ErrMissingData)
		}
		if err := m.First.validate(v.FitKind, len(g.Time), v.FitParams.Dim()); err != nil {
			return fmt.Errorf("mode %s first datapiece: %w", md, err)
		}
		if err := m.Second.validate(v.FitKind, len(g.Time), v.FitParams.Dim()); err != nil {
			return fmt.Errorf("mode %s second datapiece: %w", md, err)
		}
	}

	return nil
}

// Validate checks every grid the variant needs against it.
func (d Data) Validate(v Variant) error {
	signs := []SpinSign{Positive}
	if v.SpinDependent {
		signs = append(signs, Negative)
	}
	for _, s := range signs {
		g, ok := d.Grids[s]
		if !ok || g == nil {
			return fmt.Errorf("Data.Validate: grid %s: %w", s, ErrMissingData)
		}
		if err := g.validate(v); err != nil {
			return fmt.Errorf("Data.Validate: grid %s: %w", s, err)
		}
	}
	if err := d.Calibration.Validate(); err != nil {
		return fmt.Errorf("Data.Validate: %w", err)
	}
	if d.Calibration.Form.Dim != v.CalibrationParams.Dim() {
		return fmt.Errorf("Data.Validate: calibration form %q takes %d params, variant supplies %d: %w",
			d.Calibration.Form.Name, d.Calibration.Form.Dim, v.CalibrationParams.Dim(), calibration.ErrParamDimension)
	}

	return nil
}
