// SPDX-License-Identifier: MIT

package calibration

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/waveform"
)

// Config is the calibration data of one model. It is read-only after load.
type Config struct {
	Form Form

	// AlphaCoeffs is keyed by diagonal modes (l,l), l ≤ MaxCalibratedL.
	AlphaCoeffs map[waveform.Mode][]float64

	// BetaCoeffs parameterizes the global time rescaling.
	BetaCoeffs []float64

	// MaxCalibratedL is the largest angular index that is rescaled.
	MaxCalibratedL int
}

// Validate checks the form, arities and coverage of every calibrated l.
// Coefficient coverage starts at l = 2.
func (c Config) Validate() error {
	if c.Form.Eval == nil {
		return fmt.Errorf("Config.Validate: %w", ErrNilForm)
	}
	if len(c.BetaCoeffs) == 0 {
		return fmt.Errorf("Config.Validate: beta: %w", ErrMissingCoefficients)
	}
	if len(c.BetaCoeffs) != c.Form.Arity {
		return fmt.Errorf("Config.Validate: beta has %d coefficients, form %q needs %d: %w",
			len(c.BetaCoeffs), c.Form.Name, c.Form.Arity, ErrCoefficientArity)
	}
	for l := 2; l <= c.MaxCalibratedL; l++ {
		coeffs, ok := c.AlphaCoeffs[waveform.Mode{L: l, M: l}]
		if !ok {
			return fmt.Errorf("Config.Validate: alpha for l=%d: %w", l, ErrMissingCoefficients)
		}
		if len(coeffs) != c.Form.Arity {
			return fmt.Errorf("Config.Validate: alpha for l=%d has %d coefficients, form %q needs %d: %w",
				l, len(coeffs), c.Form.Name, c.Form.Arity, ErrCoefficientArity)
		}
	}

	return nil
}

// Alpha returns the amplitude scale for angular index l at x.
// For l > MaxCalibratedL it is exactly 1.
func (c Config) Alpha(x []float64, l int) (float64, error) {
	if l > c.MaxCalibratedL {
		return 1.0, nil
	}
	coeffs, ok := c.AlphaCoeffs[waveform.Mode{L: l, M: l}]
	if !ok {
		return 0, fmt.Errorf("Alpha(l=%d): %w", l, ErrMissingCoefficients)
	}

	return c.eval(x, coeffs)
}

// Beta returns the global time scale at x.
func (c Config) Beta(x []float64) (float64, error) {
	if len(c.BetaCoeffs) == 0 {
		return 0, fmt.Errorf("Beta: %w", ErrMissingCoefficients)
	}

	return c.eval(x, c.BetaCoeffs)
}

func (c Config) eval(x, coeffs []float64) (float64, error) {
	if c.Form.Eval == nil {
		return 0, ErrNilForm
	}
	if len(x) != c.Form.Dim {
		return 0, fmt.Errorf("form %q takes %d parameters, got %d: %w", c.Form.Name, c.Form.Dim, len(x), ErrParamDimension)
	}
	if len(coeffs) != c.Form.Arity {
		return 0, fmt.Errorf("form %q takes %d coefficients, got %d: %w", c.Form.Name, c.Form.Arity, len(coeffs), ErrCoefficientArity)
	}

	return c.Form.Eval(x, coeffs), nil
}

// Calibrate rescales every mode by the alpha of its l and the time axis by
// beta. Alpha is evaluated once per distinct l. s is not modified.
//
// Errors surface before any output is built.
// Complexity: O(modes · samples).
func Calibrate(x []float64, s waveform.Set, c Config) (waveform.Set, error) {
	beta, err := c.Beta(x)
	if err != nil {
		return waveform.Set{}, fmt.Errorf("Calibrate: %w", err)
	}
	alphas := make(map[int]float64)
	for md := range s.Modes {
		if _, done := alphas[md.L]; done {
			continue
		}
		a, err := c.Alpha(x, md.L)
		if err != nil {
			return waveform.Set{}, fmt.Errorf("Calibrate: mode %s: %w", md, err)
		}
		alphas[md.L] = a
	}

	out := waveform.NewSet(nil)
	out.Time = make([]float64, len(s.Time))
	for i, t := range s.Time {
		out.Time[i] = t * beta
	}
	for md, h := range s.Modes {
		scaled := make([]complex128, len(h))
		if alphas[md.L] == 1 {
			copy(scaled, h)
			out.Modes[md] = scaled
			continue
		}
		a := complex(alphas[md.L], 0)
		for i, v := range h {
			scaled[i] = v * a
		}
		out.Modes[md] = scaled
	}

	return out, nil
}
