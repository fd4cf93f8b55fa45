// SPDX-License-Identifier: MIT

package harmonics

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/waveform"
)

// SpinWeight is the spin weight of gravitational-wave strain modes.
const SpinWeight = -2

// Project multiplies every mode by ₋₂Yₗₘ(inclination, phase). The time axis
// is shared with the input; the series are fresh copies.
func Project(s waveform.Set, inclination, phase float64) waveform.Set {
	out := waveform.NewSet(s.Time)
	for md, h := range s.Modes {
		y := SpinWeightedYlm(SpinWeight, md.L, md.M, inclination, phase)
		proj := make([]complex128, len(h))
		for i, v := range h {
			proj[i] = v * y
		}
		out.Modes[md] = proj
	}

	return out
}

// Sum adds all modes sample by sample. The output has one sample per entry
// of the time axis; any mode of a different length is rejected. A Set
// without modes sums to zero.
func Sum(s waveform.Set) ([]complex128, error) {
	n := len(s.Time)
	total := make([]complex128, n)
	for _, md := range s.SortedModes() {
		h := s.Modes[md]
		if len(h) != n {
			return nil, fmt.Errorf("Sum: mode %s has %d samples, want %d: %w",
				md, len(h), n, waveform.ErrLengthMismatch)
		}
		for i, v := range h {
			total[i] += v
		}
	}

	return total, nil
}
