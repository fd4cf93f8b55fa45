// SPDX-License-Identifier: MIT

package surrogate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bhptsur/fits"
	"github.com/katalvlaran/bhptsur/validate"
	"github.com/katalvlaran/bhptsur/waveform"
)

// Composition combines the two datapieces of a mode into a complex series.
type Composition int

const (
	// AmpPhase is amp·exp(i·phase).
	AmpPhase Composition = iota

	// ReIm is re + i·im, left in the coorbital frame for the frame stage.
	ReIm

	// ReImInline is (re + i·im)·exp(i·m·φ), rotated to the inertial frame
	// during reconstruction.
	ReImInline
)

var compositionNames = map[Composition]string{
	AmpPhase:   "amp_phase",
	ReIm:       "re_im",
	ReImInline: "re_im_inline",
}

// String implements fmt.Stringer.
func (c Composition) String() string {
	if s, ok := compositionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Composition(%d)", int(c))
}

// ParseComposition is the inverse of String.
func ParseComposition(s string) (Composition, error) {
	for c, name := range compositionNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownComposition)
}

// PhaseSource selects which (2,2) series the orbital phase is read from.
type PhaseSource int

const (
	// PostConvention reads the phase from h22 after conj(·)·norm.
	PostConvention PhaseSource = iota

	// PreConvention reads the phase from h22 before conjugation. The
	// resulting φ has the opposite sense of PostConvention.
	PreConvention
)

// String implements fmt.Stringer.
func (p PhaseSource) String() string {
	if p == PreConvention {
		return "pre"
	}
	return "post"
}

// Parameterization maps physical parameters (q, χ1) onto a fit or
// calibration coordinate vector.
type Parameterization string

// Registered parameterizations.
const (
	Log10Q     Parameterization = "log10q"
	Log10QSpin Parameterization = "log10q_chi1"
	InverseQ   Parameterization = "inv_q"
	QSpin      Parameterization = "q_chi1"
)

// Dim returns the length of the vector Apply produces.
func (p Parameterization) Dim() int {
	switch p {
	case Log10Q, InverseQ:
		return 1
	case Log10QSpin, QSpin:
		return 2
	default:
		return 0
	}
}

// Apply returns the coordinate vector for mass ratio q and spin chi.
func (p Parameterization) Apply(q, chi float64) ([]float64, error) {
	switch p {
	case Log10Q:
		return []float64{math.Log10(q)}, nil
	case Log10QSpin:
		return []float64{math.Log10(q), chi}, nil
	case InverseQ:
		return []float64{1 / q}, nil
	case QSpin:
		return []float64{q, chi}, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(p), ErrUnknownParameterization)
	}
}

// Normalization is the overall factor applied with the sign convention.
type Normalization string

// Registered normalizations.
const (
	NormInverseQ Normalization = "inv_q"
	NormUnity    Normalization = "unity"
)

// Factor returns the normalization for mass ratio q.
func (n Normalization) Factor(q float64) (float64, error) {
	switch n {
	case NormInverseQ:
		return 1 / q, nil
	case NormUnity:
		return 1, nil
	default:
		return 0, fmt.Errorf("normalization %q: %w", string(n), ErrBadVariant)
	}
}

// SpinSign selects the fit data of spin-dependent models.
type SpinSign int

const (
	// Positive covers χ1 ≥ 0 and every non-spinning model.
	Positive SpinSign = iota

	// Negative covers χ1 < 0.
	Negative
)

// String implements fmt.Stringer.
func (s SpinSign) String() string {
	if s == Negative {
		return "negative_spin"
	}
	return "positive_spin"
}

// SignOf returns the grid selector for spin chi.
func SignOf(chi float64) SpinSign {
	if chi < 0 {
		return Negative
	}
	return Positive
}

// Variant is the tagged configuration of one model family. It is resolved
// once when a Model is built and never consulted from per-call options.
type Variant struct {
	Name        string
	Description string

	FitKind fits.Kind
	Frame   waveform.FramePolicy

	// Dominant and Higher are the compositions of (2,2) and of all other modes.
	Dominant Composition
	Higher   Composition

	// PhaseSource matters only for ReImInline.
	PhaseSource PhaseSource

	Norm Normalization

	// FitParams feeds the datapiece fits, CalibrationParams the NR calibration.
	FitParams         Parameterization
	CalibrationParams Parameterization

	Bounds validate.Bounds

	// SpinDependent models carry one grid per SpinSign and accept Spin1.
	SpinDependent bool

	// Modes lists the stored modes in their canonical order.
	Modes []waveform.Mode

	DefaultMaxL          int
	DefaultNegativeModes bool
}

// Validate checks internal consistency of the variant.
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("Variant.Validate: empty name: %w", ErrBadVariant)
	}
	if len(v.Modes) == 0 {
		return fmt.Errorf("Variant.Validate %s: no modes: %w", v.Name, ErrBadVariant)
	}
	hasDominant := false
	for _, md := range v.Modes {
		if md.L < 2 || md.M <= 0 || md.M > md.L {
			return fmt.Errorf("Variant.Validate %s: mode %s: %w", v.Name, md, waveform.ErrInvalidAzimuthalIndex)
		}
		hasDominant = hasDominant || md == waveform.Dominant
	}
	if !hasDominant {
		return fmt.Errorf("Variant.Validate %s: %w", v.Name, waveform.ErrMissingDominantMode)
	}
	if v.Dominant != AmpPhase {
		return fmt.Errorf("Variant.Validate %s: dominant mode must use %s: %w", v.Name, AmpPhase, ErrBadVariant)
	}
	switch {
	case v.Higher == ReIm && v.Frame != waveform.ExplicitCoorbital:
		return fmt.Errorf("Variant.Validate %s: %s needs the explicit frame policy: %w", v.Name, ReIm, ErrBadVariant)
	case v.Higher == ReImInline && v.Frame != waveform.InlineCoorbital:
		return fmt.Errorf("Variant.Validate %s: %s needs the inline frame policy: %w", v.Name, ReImInline, ErrBadVariant)
	}
	if _, err := v.Norm.Factor(2); err != nil {
		return fmt.Errorf("Variant.Validate %s: %w", v.Name, err)
	}
	if v.FitParams.Dim() == 0 || v.CalibrationParams.Dim() == 0 {
		return fmt.Errorf("Variant.Validate %s: %w", v.Name, ErrUnknownParameterization)
	}
	if v.FitKind == fits.KindSpline && v.FitParams.Dim() != 1 {
		return fmt.Errorf("Variant.Validate %s: spline fits are univariate: %w", v.Name, fits.ErrDimension)
	}
	if v.Bounds.Dim() != v.FitParams.Dim() || len(v.Bounds.Upper) != v.Bounds.Dim() {
		return fmt.Errorf("Variant.Validate %s: bounds for %d params: %w", v.Name, v.FitParams.Dim(), validate.ErrBoundsShape)
	}
	if v.DefaultMaxL < 2 {
		return fmt.Errorf("Variant.Validate %s: default lmax %d: %w", v.Name, v.DefaultMaxL, ErrBadVariant)
	}

	return nil
}

// needsPhase reports whether reconstructing higher modes requires φ.
func (v Variant) needsPhase() bool {
	return v.Higher == ReImInline || v.Frame == waveform.ExplicitCoorbital
}
