// SPDX-License-Identifier: MIT

// Package validate: sentinel error set.

package validate

import "errors"

var (
	// ErrInvalidMode is returned when a requested mode is not provided by the model.
	ErrInvalidMode = errors.New("validate: requested mode not available")

	// ErrInconsistentParams is returned when a paired parameter is given
	// without its partner, or when a mode sum lacks any of the four
	// extrinsic parameters.
	ErrInconsistentParams = errors.New("validate: inconsistent extrinsic parameters")

	// ErrInvalidParameter is returned for a non-finite intrinsic or
	// extrinsic parameter, or a mass ratio below 1.
	ErrInvalidParameter = errors.New("validate: invalid parameter")

	// ErrBoundsShape is returned when bounds and parameter vector differ in length.
	ErrBoundsShape = errors.New("validate: bounds do not match parameter vector")
)
