package waveform

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FramePolicy selects where higher modes modelled in the coorbital frame are
// rotated into the inertial frame. It is a property of a model variant and
// is fixed when the model is built.
type FramePolicy int

const (
	// InlineCoorbital composes exp(i·m·φ) while reconstructing each mode; the
	// frame stage is then a no-op.
	InlineCoorbital FramePolicy = iota

	// ExplicitCoorbital reconstructs higher modes in the coorbital frame and
	// rotates them afterwards with CoorbitalToInertial.
	ExplicitCoorbital
)

// String implements fmt.Stringer.
func (p FramePolicy) String() string {
	switch p {
	case InlineCoorbital:
		return "inline"
	case ExplicitCoorbital:
		return "explicit"
	default:
		return fmt.Sprintf("FramePolicy(%d)", int(p))
	}
}

// Unwrap removes 2π jumps between consecutive samples, following the
// numpy.unwrap rule: a step d is replaced by the representative of d in
// [−π, π), with +π kept when d itself is positive.
// Complexity: O(n).
func Unwrap(p []float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}
	out[0] = p[0]
	var correction float64
	for i := 1; i < len(p); i++ {
		d := p[i] - p[i-1]
		dd := floorMod(d+math.Pi, 2*math.Pi) - math.Pi
		if dd == -math.Pi && d > 0 {
			dd = math.Pi
		}
		if math.Abs(d) >= math.Pi {
			correction += dd - d
		}
		out[i] = p[i] + correction
	}

	return out
}

// floorMod is the floored modulo: the result carries the sign of y.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// OrbitalPhase returns unwrap(arg h22)/2.
func OrbitalPhase(h22 []complex128) []float64 {
	args := make([]float64, len(h22))
	for i, v := range h22 {
		args[i] = cmplx.Phase(v)
	}
	phase := Unwrap(args)
	for i := range phase {
		phase[i] /= 2
	}

	return phase
}

// CoorbitalToInertial rotates every mode except (2,2) by exp(i·m·φ), where φ
// is the orbital phase of the (2,2) mode of s. The (2,2) mode is assumed to
// already be inertial and is copied unchanged.
//
// Errors:
//   - ErrMissingDominantMode when (2,2) is absent.
//   - ErrLengthMismatch when a mode length differs from (2,2).
func CoorbitalToInertial(s Set) (Set, error) {
	h22, ok := s.Modes[Dominant]
	if !ok {
		return Set{}, fmt.Errorf("CoorbitalToInertial: %w", ErrMissingDominantMode)
	}
	phase := OrbitalPhase(h22)

	out := NewSet(s.Time)
	for md, h := range s.Modes {
		if md == Dominant {
			out.Modes[md] = cloneSeries(h)
			continue
		}
		if len(h) != len(phase) {
			return Set{}, fmt.Errorf("CoorbitalToInertial: mode %s: %w", md, ErrLengthMismatch)
		}
		out.Modes[md] = RotateSeries(h, float64(md.M), phase)
	}

	return out, nil
}

// RotateSeries returns h[i]·exp(i·m·φ[i]).
func RotateSeries(h []complex128, m float64, phase []float64) []complex128 {
	out := make([]complex128, len(h))
	for i, v := range h {
		out[i] = v * cmplx.Exp(complex(0, m*phase[i]))
	}

	return out
}

// RotatePhase applies a rigid orbital phase shift Δφ: h(l,m)·exp(i·m·Δφ).
func RotatePhase(s Set, deltaPhase float64) Set {
	out := NewSet(s.Time)
	for md, h := range s.Modes {
		rot := cmplx.Exp(complex(0, float64(md.M)*deltaPhase))
		shifted := make([]complex128, len(h))
		for i, v := range h {
			shifted[i] = v * rot
		}
		out.Modes[md] = shifted
	}

	return out
}
