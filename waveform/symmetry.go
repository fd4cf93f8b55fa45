package waveform

import (
	"fmt"
	"math/cmplx"
)

// ExpandNegativeModes completes a Set of positive-m modes with their m<0
// partners.
//
// Description:
//
//	For binaries whose spins are aligned with the orbital angular momentum
//	the waveform is symmetric under reflection through the orbital plane
//	(Kidder 2008, Eq. 78):
//
//	  h(l,−m) = (−1)^l · conj(h(l,m))
//
//	Models store only m > 0 and derive the rest here.
//
// Algorithm Outline:
//  1. Reject the Set if any mode has m ≤ 0, before allocating anything.
//  2. For every stored mode, copy h(l,m) into the output.
//  3. Multiply conj(h(l,m)) by +1 for even l and −1 for odd l and store it
//     under (l,−m).
//
// The returned Set holds both the original and the derived modes and shares
// nothing with s.
//
// Errors:
//   - ErrInvalidAzimuthalIndex if any mode has m ≤ 0. No partial Set is returned.
//
// Complexity:
//
//	Time   = O(modes · samples)
//	Memory = O(modes · samples)
func ExpandNegativeModes(s Set) (Set, error) {
	for md := range s.Modes {
		if md.M <= 0 {
			return Set{}, fmt.Errorf("ExpandNegativeModes: mode %s: %w", md, ErrInvalidAzimuthalIndex)
		}
	}

	out := NewSet(s.Time)
	for md, h := range s.Modes {
		out.Modes[md] = cloneSeries(h)

		sign := complex(1, 0)
		if md.L%2 != 0 {
			sign = complex(-1, 0)
		}
		mirror := make([]complex128, len(h))
		for i, v := range h {
			mirror[i] = sign * cmplx.Conj(v)
		}
		out.Modes[md.Mirror()] = mirror
	}

	return out, nil
}
