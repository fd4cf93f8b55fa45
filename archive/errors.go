// SPDX-License-Identifier: MIT

package archive

import "errors"

var (
	// ErrUnsupportedVersion is returned for a document of another format version.
	ErrUnsupportedVersion = errors.New("archive: unsupported format version")

	// ErrUnknownSpinSign is returned for a grid key other than
	// "positive_spin" or "negative_spin".
	ErrUnknownSpinSign = errors.New("archive: unknown spin sign")

	// ErrUnknownForm is returned for an unknown calibration form name.
	ErrUnknownForm = errors.New("archive: unknown calibration form")

	// ErrRaggedMatrix is returned for a matrix whose rows differ in length.
	ErrRaggedMatrix = errors.New("archive: ragged matrix")
)
