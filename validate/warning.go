// SPDX-License-Identifier: MIT

package validate

import "fmt"

// Kind classifies a non-fatal Warning.
type Kind int

const (
	// OutOfDomain marks a parameter outside the training bounds; the model is
	// evaluated anyway as an extrapolation.
	OutOfDomain Kind = iota

	// UncalibratedMode marks a requested lmax above the calibrated cutoff.
	UncalibratedMode

	// Uncalibrated marks an evaluation with NR calibration switched off.
	Uncalibrated
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case OutOfDomain:
		return "out_of_domain"
	case UncalibratedMode:
		return "uncalibrated_mode"
	case Uncalibrated:
		return "uncalibrated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Warning is a non-fatal finding returned next to the waveform.
// Index is the offending parameter index for OutOfDomain and −1 otherwise.
type Warning struct {
	Kind    Kind
	Message string
	Index   int
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// UncalibratedModeWarning reports that modes above maxCalibratedL carry no
// NR correction.
func UncalibratedModeWarning(lmax, maxCalibratedL int) Warning {
	return Warning{
		Kind:    UncalibratedMode,
		Message: fmt.Sprintf("lmax=%d but only modes up to l=%d are NR calibrated", lmax, maxCalibratedL),
		Index:   -1,
	}
}

// UncalibratedWarning reports that NR calibration was disabled.
func UncalibratedWarning() Warning {
	return Warning{
		Kind:    Uncalibrated,
		Message: "modes are not NR calibrated, waveforms only carry the 0PA contribution",
		Index:   -1,
	}
}
