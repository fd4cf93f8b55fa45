// SPDX-License-Identifier: MIT

// Package fits: sentinel error set.
// All evaluators return these sentinels (wrapped with call context);
// tests match them with errors.Is.

package fits

import "errors"

var (
	// ErrUnknownFitKind is returned for a Record whose Kind is not supported.
	ErrUnknownFitKind = errors.New("fits: unknown fit kind")

	// ErrShapeMismatch signals inconsistent node, fit or basis dimensions.
	ErrShapeMismatch = errors.New("fits: shape mismatch")

	// ErrBadSpline signals a malformed spline descriptor (degree, knots, coefficients).
	ErrBadSpline = errors.New("fits: malformed spline")

	// ErrBadGPR signals a malformed Gaussian-process descriptor.
	ErrBadGPR = errors.New("fits: malformed GPR")

	// ErrDimension indicates a parameter vector of the wrong length.
	ErrDimension = errors.New("fits: parameter dimension mismatch")

	// ErrNaNInf signals a non-finite value where finite values are required.
	ErrNaNInf = errors.New("fits: NaN or Inf encountered")

	// ErrNilBasis indicates a nil basis matrix.
	ErrNilBasis = errors.New("fits: nil basis matrix")
)
