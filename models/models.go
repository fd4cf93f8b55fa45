// Package models defines the published ppBHPT surrogate families.
//
// A Definition pairs the surrogate.Variant of a family with the calibration
// form and cutoff its coefficient tables are expected to use. Fit data is
// not part of a Definition; it comes from package archive.
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/fits"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/validate"
	"github.com/katalvlaran/bhptsur/waveform"
)

var (
	// ErrUnknownModel is returned by ByName for an unregistered family.
	ErrUnknownModel = errors.New("models: unknown model")

	// ErrCalibrationMismatch is returned when a calibration table uses another
	// form or cutoff than its family.
	ErrCalibrationMismatch = errors.New("models: calibration does not match model")
)

// Model family names.
const (
	NameBHPTNRSur1dq1e4 = "BHPTNRSur1dq1e4"
	NameBHPTNRSur2dq1e3 = "BHPTNRSur2dq1e3"
)

// Definition is everything about a family except its fit data.
type Definition struct {
	Variant        surrogate.Variant
	Form           calibration.Form
	MaxCalibratedL int
	Reference      string

	// MassRatioRange and SpinRange are the training box in physical units.
	MassRatioRange [2]float64
	SpinRange      [2]float64
}

// Mode lists are kept in the published order.
var (
	modes1dq1e4 = []waveform.Mode{
		{L: 2, M: 2}, {L: 2, M: 1}, {L: 3, M: 1}, {L: 3, M: 2}, {L: 3, M: 3},
		{L: 4, M: 2}, {L: 4, M: 3}, {L: 4, M: 4}, {L: 5, M: 3}, {L: 5, M: 4},
		{L: 5, M: 5}, {L: 6, M: 4}, {L: 6, M: 5}, {L: 6, M: 6}, {L: 7, M: 5},
		{L: 7, M: 6}, {L: 7, M: 7}, {L: 8, M: 6}, {L: 8, M: 7}, {L: 8, M: 8},
		{L: 9, M: 7}, {L: 9, M: 8}, {L: 9, M: 9}, {L: 10, M: 8}, {L: 10, M: 9},
	}
	modes2dq1e3 = []waveform.Mode{
		{L: 2, M: 2}, {L: 2, M: 1}, {L: 3, M: 1}, {L: 3, M: 2},
		{L: 3, M: 3}, {L: 4, M: 2}, {L: 4, M: 3}, {L: 4, M: 4},
	}
)

// BHPTNRSur1dq1e4 is the non-spinning family for 2.5 ≤ q ≤ 10⁴.
//
// The (2,2) mode is fitted in amplitude and phase, every higher mode in the
// real and imaginary parts of the coorbital-frame series, which is rotated
// during reconstruction with the phase of the unconjugated (2,2) mode.
// NR calibration uses the quartic form in 1/q for l ≤ 5.
func BHPTNRSur1dq1e4() Definition {
	qMin, qMax := 2.5, 1e4
	return Definition{
		Variant: surrogate.Variant{
			Name: NameBHPTNRSur1dq1e4,
			Description: "non-spinning ppBHPT surrogate calibrated to NR, " +
				"mass ratios 2.5 to 10000, modes up to (10,9)",
			FitKind:           fits.KindSpline,
			Frame:             waveform.InlineCoorbital,
			Dominant:          surrogate.AmpPhase,
			Higher:            surrogate.ReImInline,
			PhaseSource:       surrogate.PreConvention,
			Norm:              surrogate.NormInverseQ,
			FitParams:         surrogate.Log10Q,
			CalibrationParams: surrogate.InverseQ,
			Bounds: validate.Bounds{
				Names: []string{"log10(q)"},
				Lower: []float64{math.Log10(qMin)},
				Upper: []float64{math.Log10(qMax)},
			},
			Modes:                append([]waveform.Mode(nil), modes1dq1e4...),
			DefaultMaxL:          5,
			DefaultNegativeModes: true,
		},
		Form:           calibration.Quartic,
		MaxCalibratedL: 5,
		Reference:      "Islam et al. 2022, arXiv:2204.01972",
		MassRatioRange: [2]float64{qMin, qMax},
	}
}

// BHPTNRSur2dq1e3 is the aligned primary-spin family for 3 ≤ q ≤ 1000 and
// |χ1| ≤ 0.8. Every mode is fitted in amplitude and phase with GPRs, and
// the data is split by the sign of χ1.
func BHPTNRSur2dq1e3() Definition {
	qMin, qMax := 3.0, 1000.0
	chiMin, chiMax := -0.8, 0.8
	return Definition{
		Variant: surrogate.Variant{
			Name: NameBHPTNRSur2dq1e3,
			Description: "aligned primary-spin ppBHPT surrogate calibrated to NR, " +
				"mass ratios 3 to 1000, |chi1| <= 0.8, modes up to (4,4)",
			FitKind:           fits.KindGPR,
			Frame:             waveform.InlineCoorbital,
			Dominant:          surrogate.AmpPhase,
			Higher:            surrogate.AmpPhase,
			PhaseSource:       surrogate.PostConvention,
			Norm:              surrogate.NormInverseQ,
			FitParams:         surrogate.Log10QSpin,
			CalibrationParams: surrogate.QSpin,
			Bounds: validate.Bounds{
				Names: []string{"log10(q)", "chi1"},
				Lower: []float64{math.Log10(qMin), chiMin},
				Upper: []float64{math.Log10(qMax), chiMax},
			},
			SpinDependent:        true,
			Modes:                append([]waveform.Mode(nil), modes2dq1e3...),
			DefaultMaxL:          4,
			DefaultNegativeModes: false,
		},
		Form:           calibration.SpinQuadratic,
		MaxCalibratedL: 4,
		MassRatioRange: [2]float64{qMin, qMax},
		SpinRange:      [2]float64{chiMin, chiMax},
	}
}

var registry = map[string]func() Definition{
	NameBHPTNRSur1dq1e4: BHPTNRSur1dq1e4,
	NameBHPTNRSur2dq1e3: BHPTNRSur2dq1e3,
}

// ByName returns a fresh Definition of the named family.
func ByName(name string) (Definition, error) {
	f, ok := registry[name]
	if !ok {
		return Definition{}, fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}
	return f(), nil
}

// Names lists the registered families in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CheckCalibration verifies that c matches the form and cutoff of d.
func (d Definition) CheckCalibration(c calibration.Config) error {
	if c.Form.Name != d.Form.Name {
		return fmt.Errorf("%s: calibration form %q, want %q: %w",
			d.Variant.Name, c.Form.Name, d.Form.Name, ErrCalibrationMismatch)
	}
	if c.MaxCalibratedL != d.MaxCalibratedL {
		return fmt.Errorf("%s: calibrated up to l=%d, want %d: %w",
			d.Variant.Name, c.MaxCalibratedL, d.MaxCalibratedL, ErrCalibrationMismatch)
	}
	return c.Validate()
}
