// SPDX-License-Identifier: MIT

// Package waveform: sentinel error set.
// Callers match these with errors.Is; context is added with
// fmt.Errorf("Op: %w", ErrX) at the call site.

package waveform

import "errors"

var (
	// ErrInvalidAzimuthalIndex is returned when a stored mode carries m ≤ 0.
	// Only positive-m modes are ever stored; negative m is derived.
	ErrInvalidAzimuthalIndex = errors.New("waveform: azimuthal index m must be positive")

	// ErrMissingDominantMode indicates that a stage needing the (2,2) mode
	// did not find it in the Set.
	ErrMissingDominantMode = errors.New("waveform: dominant (2,2) mode missing")

	// ErrLengthMismatch indicates a series whose length differs from the time axis.
	ErrLengthMismatch = errors.New("waveform: series length does not match time axis")

	// ErrBadMode signals a mode string that cannot be parsed.
	ErrBadMode = errors.New("waveform: malformed mode")
)
