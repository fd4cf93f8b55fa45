// SPDX-License-Identifier: MIT

package calibration

import "errors"

var (
	// ErrMissingCoefficients is returned when a calibrated angular index has
	// no alpha coefficients, or beta coefficients are absent.
	ErrMissingCoefficients = errors.New("calibration: missing coefficients")

	// ErrCoefficientArity indicates a coefficient vector whose length differs
	// from the functional form's arity.
	ErrCoefficientArity = errors.New("calibration: coefficient count does not match form")

	// ErrParamDimension indicates a calibration parameter vector of the wrong length.
	ErrParamDimension = errors.New("calibration: parameter dimension mismatch")

	// ErrNilForm indicates a Config without a functional form.
	ErrNilForm = errors.New("calibration: nil functional form")
)
