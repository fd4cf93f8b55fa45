// SPDX-License-Identifier: MIT

// Package surrogate: sentinel error set.
// User-facing validation errors live in package validate; the errors here
// describe malformed model definitions and pipeline failures.

package surrogate

import "errors"

var (
	// ErrBadVariant indicates an inconsistent variant definition, e.g. a
	// re/im composition under a frame policy that never rotates it.
	ErrBadVariant = errors.New("surrogate: invalid model variant")

	// ErrMissingData indicates that a grid lacks a mode, datapiece or basis.
	ErrMissingData = errors.New("surrogate: missing fit data")

	// ErrFitKindMismatch indicates a fit record whose kind differs from the variant's.
	ErrFitKindMismatch = errors.New("surrogate: fit kind does not match variant")

	// ErrBasisShape indicates a basis matrix that does not match its fit or time grid.
	ErrBasisShape = errors.New("surrogate: basis matrix shape mismatch")

	// ErrSpinUnsupported is returned when a spin is passed to a non-spinning model.
	ErrSpinUnsupported = errors.New("surrogate: model does not take a spin parameter")

	// ErrNoModes is returned when lmax filtering leaves nothing to evaluate.
	ErrNoModes = errors.New("surrogate: no requested mode within lmax")

	// ErrUnknownParameterization signals an unregistered parameter map name.
	ErrUnknownParameterization = errors.New("surrogate: unknown parameterization")

	// ErrUnknownComposition signals an unregistered composition name.
	ErrUnknownComposition = errors.New("surrogate: unknown composition")
)
