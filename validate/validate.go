// Package validate gates every evaluation request before any fit is touched.
//
// Inputs runs the checks in a fixed order: extrinsic parameter pairing,
// then the training domain, then the requested modes. Errors stop the
// request; domain violations are only warnings because the surrogate may be
// used, with care, as an extrapolation.
package validate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/waveform"
)

// Bounds is the training box of a model in its fit parameterization.
type Bounds struct {
	Names []string
	Lower []float64
	Upper []float64
}

// Dim returns the number of bounded parameters.
func (b Bounds) Dim() int { return len(b.Lower) }

// Request collects everything Inputs needs. Nil pointers mean "not given".
type Request struct {
	Requested []waveform.Mode
	Available []waveform.Mode

	// X is the parameter vector in the fit parameterization, e.g. [log10 q].
	X      []float64
	Bounds Bounds

	TotalMassSolar *float64
	DistanceMpc    *float64
	OrbitalPhase   *float64
	Inclination    *float64
	ModeSum        bool
}

// Report carries the non-fatal findings of Inputs.
type Report struct {
	Warnings []Warning
}

// Inputs validates req. Out-of-domain warnings are logged at WARN on log.
func Inputs(req Request, log logging.Logger) (Report, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	if err := Extrinsic(req.TotalMassSolar, req.DistanceMpc, req.OrbitalPhase, req.Inclination, req.ModeSum); err != nil {
		return Report{}, err
	}
	warnings, err := Domain(req.X, req.Bounds, log)
	if err != nil {
		return Report{}, err
	}
	if err = Modes(req.Requested, req.Available); err != nil {
		return Report{}, err
	}

	return Report{Warnings: warnings}, nil
}

// Extrinsic enforces both-or-neither for (mass, distance) and for
// (phase, inclination), and all four when sum is set.
func Extrinsic(mTot, dist, phase, incl *float64, sum bool) error {
	if (mTot == nil) != (dist == nil) {
		return fmt.Errorf("specify both total mass and distance, or neither: %w", ErrInconsistentParams)
	}
	if (phase == nil) != (incl == nil) {
		return fmt.Errorf("specify both orbital phase and inclination, or neither: %w", ErrInconsistentParams)
	}
	if sum && (mTot == nil || phase == nil) {
		return fmt.Errorf("mode sum needs total mass, distance, orbital phase and inclination: %w", ErrInconsistentParams)
	}
	for _, p := range []*float64{mTot, dist, phase, incl} {
		if p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
			return fmt.Errorf("extrinsic parameter %g: %w", *p, ErrInvalidParameter)
		}
	}

	return nil
}

// Domain returns one OutOfDomain warning per component of x outside bounds.
// Non-finite components are errors.
func Domain(x []float64, b Bounds, log logging.Logger) ([]Warning, error) {
	if len(x) != len(b.Lower) || len(x) != len(b.Upper) {
		return nil, fmt.Errorf("Domain: %d params vs %d/%d bounds: %w",
			len(x), len(b.Lower), len(b.Upper), ErrBoundsShape)
	}

	var out []Warning
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Domain: parameter %d is %g: %w", i, v, ErrInvalidParameter)
		}
		if v >= b.Lower[i] && v <= b.Upper[i] {
			continue
		}
		name := fmt.Sprintf("x[%d]", i)
		if i < len(b.Names) {
			name = b.Names[i]
		}
		w := Warning{
			Kind:    OutOfDomain,
			Message: fmt.Sprintf("%s=%g outside training range [%g, %g]", name, v, b.Lower[i], b.Upper[i]),
			Index:   i,
		}
		if log != nil {
			log.Warn("parameter outside training domain",
				logging.Int("index", i),
				logging.String("param", name),
				logging.Float64("value", v),
				logging.Float64("lower", b.Lower[i]),
				logging.Float64("upper", b.Upper[i]),
			)
		}
		out = append(out, w)
	}

	return out, nil
}

// Modes fails with ErrInvalidMode naming the first requested mode missing
// from available.
func Modes(requested, available []waveform.Mode) error {
	have := make(map[waveform.Mode]struct{}, len(available))
	for _, md := range available {
		have[md] = struct{}{}
	}
	for _, md := range requested {
		if _, ok := have[md]; !ok {
			return fmt.Errorf("mode %s: %w", md, ErrInvalidMode)
		}
	}

	return nil
}

// MassRatio rejects a non-finite mass ratio or one below 1.
func MassRatio(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 1 {
		return fmt.Errorf("mass ratio q=%g: %w", q, ErrInvalidParameter)
	}
	return nil
}
