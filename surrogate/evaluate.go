// SPDX-License-Identifier: MIT

package surrogate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/harmonics"
	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/units"
	"github.com/katalvlaran/bhptsur/validate"
	"github.com/katalvlaran/bhptsur/waveform"
)

// Params are the physical inputs of one evaluation. Nil pointers are
// "not given"; extrinsic parameters come in pairs.
type Params struct {
	MassRatio float64
	Spin1     *float64

	// Modes selects stored (m > 0) modes; nil means all available.
	Modes []waveform.Mode

	TotalMassSolar *float64
	DistanceMpc    *float64
	OrbitalPhase   *float64
	Inclination    *float64
}

// Result is the output of Evaluate. Exactly one of Modes and Summed is set.
type Result struct {
	ID       uuid.UUID
	Model    string
	Time     []float64
	Modes    map[waveform.Mode][]complex128
	Summed   []complex128
	Warnings []validate.Warning
}

// plan is the resolved, validated form of Params plus options.
type plan struct {
	chi        float64
	fitX       []float64
	calibX     []float64
	norm       float64
	generate   []waveform.Mode
	dropDomin  bool
	negative   bool
	calibrated bool
	warnings   []validate.Warning
}

type stage struct {
	name    string
	enabled bool
	run     func(waveform.Set) (waveform.Set, error)
}

// Evaluate computes the waveform of one binary.
//
// Description:
//
//	Evaluate turns the physical parameters p into spin-weighted spherical
//	harmonic modes on the model's time grid, or into one complex strain
//	series h₊ − i·hₓ when mode summation is on. Every per-call decision
//	(fit coordinates, normalization, mode list, warnings) is fixed before
//	any fit is evaluated.
//
// Algorithm Outline:
//  1. Resolve: check q and χ1, map them to fit and calibration coordinates,
//     validate extrinsic pairing, training bounds and the mode subset.
//  2. Select modes: dedupe, drop l > lmax, put (2,2) first; add (2,2) when
//     the composition needs its phase but the caller did not ask for it.
//  3. Generate raw modes: (2,2) first, then the rest on up to Workers
//     goroutines, each mode = compose(datapiece₁, datapiece₂).
//  4. Run the enabled stages in order:
//     frame → select → calibrate → symmetrize → physical → project.
//  5. Sum the modes sample by sample when WithModeSum(true) is set.
//
// Warnings:
//   - OutOfDomain: a fit coordinate outside the training box.
//   - Uncalibrated: WithCalibration(false).
//   - UncalibratedMode: lmax above the calibrated cutoff.
//
// They travel in Result.Warnings and are logged at WARN.
//
// Errors:
//   - validate.ErrInvalidParameter, ErrInconsistentParams, ErrInvalidMode.
//   - ErrSpinUnsupported for a spin on a non-spinning model.
//   - ErrNoModes when lmax leaves nothing to evaluate.
//   - ctx.Err() once ctx is cancelled during generation.
//
// Complexity:
//
//	Time   = O(modes · (nodes · fit + nodes · samples))
//	Memory = O(modes · samples)
func (m *Model) Evaluate(ctx context.Context, p Params, opts ...Option) (res *Result, err error) {
	o := gatherOptions(m.variant, opts)
	id := uuid.New()
	log := o.log.Named("surrogate").With(
		logging.String("model", m.variant.Name),
		logging.String("eval_id", id.String()),
	)
	start := time.Now()
	defer func() {
		o.recorder.ObserveEvaluation(m.variant.Name, time.Since(start), err)
		if err != nil {
			log.Debug("evaluation failed", logging.Err(err))
		}
	}()

	pl, err := m.resolve(p, o, log)
	if err != nil {
		return nil, err
	}
	for _, w := range pl.warnings {
		o.recorder.ObserveWarning(m.variant.Name, w.Kind.String())
	}

	t0 := time.Now()
	set, err := m.generateRaw(ctx, m.grid(SignOf(pl.chi)), pl.fitX, pl.generate, pl.norm, o.workers)
	if err != nil {
		return nil, fmt.Errorf("Evaluate %s: %w", m.variant.Name, err)
	}
	o.recorder.ObserveStage(m.variant.Name, "raw", time.Since(t0))
	o.recorder.ObserveModes(m.variant.Name, len(set.Modes))
	log.Debug("raw modes generated",
		logging.Int("modes", len(set.Modes)),
		logging.Int("workers", o.workers),
		logging.Duration("elapsed", time.Since(t0)),
	)

	for _, st := range m.stages(p, pl) {
		if !st.enabled {
			continue
		}
		t0 = time.Now()
		if set, err = st.run(set); err != nil {
			return nil, fmt.Errorf("Evaluate %s: %s: %w", m.variant.Name, st.name, err)
		}
		o.recorder.ObserveStage(m.variant.Name, st.name, time.Since(t0))
	}

	res = &Result{ID: id, Model: m.variant.Name, Time: set.Time, Warnings: pl.warnings}
	if o.modeSum {
		if res.Summed, err = harmonics.Sum(set); err != nil {
			return nil, fmt.Errorf("Evaluate %s: %w", m.variant.Name, err)
		}
		return res, nil
	}
	res.Modes = set.Modes

	return res, nil
}

// resolve validates p and fixes every per-call decision up front.
func (m *Model) resolve(p Params, o options, log logging.Logger) (plan, error) {
	v := m.variant
	if err := validate.MassRatio(p.MassRatio); err != nil {
		return plan{}, fmt.Errorf("Evaluate %s: %w", v.Name, err)
	}
	var chi float64
	if p.Spin1 != nil {
		if !v.SpinDependent && *p.Spin1 != 0 {
			return plan{}, fmt.Errorf("Evaluate %s: spin1=%g: %w", v.Name, *p.Spin1, ErrSpinUnsupported)
		}
		chi = *p.Spin1
	}

	fitX, err := v.FitParams.Apply(p.MassRatio, chi)
	if err != nil {
		return plan{}, fmt.Errorf("Evaluate %s: %w", v.Name, err)
	}
	calibX, err := v.CalibrationParams.Apply(p.MassRatio, chi)
	if err != nil {
		return plan{}, fmt.Errorf("Evaluate %s: %w", v.Name, err)
	}
	norm, err := v.Norm.Factor(p.MassRatio)
	if err != nil {
		return plan{}, fmt.Errorf("Evaluate %s: %w", v.Name, err)
	}

	requested := p.Modes
	if requested == nil {
		requested = v.Modes
	}
	report, err := validate.Inputs(validate.Request{
		Requested:      requested,
		Available:      v.Modes,
		X:              fitX,
		Bounds:         v.Bounds,
		TotalMassSolar: p.TotalMassSolar,
		DistanceMpc:    p.DistanceMpc,
		OrbitalPhase:   p.OrbitalPhase,
		Inclination:    p.Inclination,
		ModeSum:        o.modeSum,
	}, log.Named("validate"))
	if err != nil {
		return plan{}, fmt.Errorf("Evaluate %s: %w", v.Name, err)
	}

	kept := selectModes(requested, o.maxL)
	if len(kept) == 0 {
		return plan{}, fmt.Errorf("Evaluate %s: lmax=%d: %w", v.Name, o.maxL, ErrNoModes)
	}
	generate, dropDominant := kept, false
	if v.needsPhase() && kept[0] != waveform.Dominant {
		generate = append([]waveform.Mode{waveform.Dominant}, kept...)
		dropDominant = true
	}

	warnings := report.Warnings
	maxCal := m.data.Calibration.MaxCalibratedL
	switch {
	case !o.calibrated:
		warnings = append(warnings, validate.UncalibratedWarning())
	case o.maxL > maxCal:
		warnings = append(warnings, validate.UncalibratedModeWarning(o.maxL, maxCal))
	}
	for _, w := range warnings[len(report.Warnings):] {
		log.Warn(w.Message, logging.String("kind", w.Kind.String()))
	}

	return plan{
		chi:        chi,
		fitX:       fitX,
		calibX:     calibX,
		norm:       norm,
		generate:   generate,
		dropDomin:  dropDominant,
		negative:   o.includeNegative(v),
		calibrated: o.calibrated,
		warnings:   warnings,
	}, nil
}

// selectModes dedupes requested, drops l > lmax and moves (2,2) first.
func selectModes(requested []waveform.Mode, lmax int) []waveform.Mode {
	seen := make(map[waveform.Mode]bool, len(requested))
	out := make([]waveform.Mode, 0, len(requested))
	for _, md := range requested {
		if seen[md] || md.L > lmax {
			continue
		}
		seen[md] = true
		if md == waveform.Dominant {
			out = append([]waveform.Mode{md}, out...)
			continue
		}
		out = append(out, md)
	}
	return out
}

// stages lists the post-generation pipeline in its fixed order.
func (m *Model) stages(p Params, pl plan) []stage {
	return []stage{
		{
			name:    "frame",
			enabled: m.variant.Frame == waveform.ExplicitCoorbital,
			run:     waveform.CoorbitalToInertial,
		},
		{
			name:    "select",
			enabled: pl.dropDomin,
			run: func(s waveform.Set) (waveform.Set, error) {
				out := waveform.NewSet(s.Time)
				for md, h := range s.Modes {
					if md != waveform.Dominant {
						out.Modes[md] = h
					}
				}
				return out, nil
			},
		},
		{
			name:    "calibrate",
			enabled: pl.calibrated,
			run: func(s waveform.Set) (waveform.Set, error) {
				return calibration.Calibrate(pl.calibX, s, m.data.Calibration)
			},
		},
		{
			name:    "symmetrize",
			enabled: pl.negative,
			run:     waveform.ExpandNegativeModes,
		},
		{
			name:    "physical",
			enabled: p.TotalMassSolar != nil && p.DistanceMpc != nil,
			run: func(s waveform.Set) (waveform.Set, error) {
				return units.ToPhysical(s, *p.TotalMassSolar, *p.DistanceMpc)
			},
		},
		{
			name:    "project",
			enabled: p.OrbitalPhase != nil && p.Inclination != nil,
			run: func(s waveform.Set) (waveform.Set, error) {
				return harmonics.Project(s, *p.Inclination, *p.OrbitalPhase), nil
			},
		},
	}
}
