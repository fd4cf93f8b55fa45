// SPDX-License-Identifier: MIT

package surrogate

import (
	"context"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/bhptsur/waveform"
	"golang.org/x/sync/errgroup"
)

// compose builds the complex series of a mode from its datapieces, before
// the sign convention is applied.
func compose(dp1, dp2 []float64, comp Composition, md waveform.Mode, phase []float64) ([]complex128, error) {
	if len(dp1) != len(dp2) {
		return nil, fmt.Errorf("mode %s: datapieces of %d and %d samples: %w", md, len(dp1), len(dp2), waveform.ErrLengthMismatch)
	}
	out := make([]complex128, len(dp1))
	switch comp {
	case AmpPhase:
		for i := range dp1 {
			out[i] = complex(dp1[i], 0) * cmplx.Exp(complex(0, dp2[i]))
		}
	case ReIm:
		for i := range dp1 {
			out[i] = complex(dp1[i], dp2[i])
		}
	case ReImInline:
		if len(phase) != len(dp1) {
			return nil, fmt.Errorf("mode %s: orbital phase has %d samples, want %d: %w",
				md, len(phase), len(dp1), waveform.ErrLengthMismatch)
		}
		m := float64(md.M)
		for i := range dp1 {
			out[i] = complex(dp1[i], dp2[i]) * cmplx.Exp(complex(0, m*phase[i]))
		}
	default:
		return nil, fmt.Errorf("mode %s: %w", md, ErrUnknownComposition)
	}

	return out, nil
}

// applyConvention returns conj(h)·norm in place.
func applyConvention(h []complex128, norm float64) []complex128 {
	f := complex(norm, 0)
	for i, v := range h {
		h[i] = cmplx.Conj(v) * f
	}
	return h
}

// reconstructMode is compose followed by the sign/normalization convention.
func reconstructMode(dp1, dp2 []float64, comp Composition, md waveform.Mode, phase []float64, norm float64) ([]complex128, error) {
	h, err := compose(dp1, dp2, comp, md, phase)
	if err != nil {
		return nil, err
	}
	return applyConvention(h, norm), nil
}

// evalPieces evaluates both datapieces of md at x.
func evalPieces(g *Grid, x []float64, md waveform.Mode) (dp1, dp2 []float64, err error) {
	data, ok := g.Modes[md]
	if !ok {
		return nil, nil, fmt.Errorf("mode %s: %w", md, ErrMissingData)
	}
	if dp1, err = data.First.Eval(x); err != nil {
		return nil, nil, fmt.Errorf("mode %s first datapiece: %w", md, err)
	}
	if dp2, err = data.Second.Eval(x); err != nil {
		return nil, nil, fmt.Errorf("mode %s second datapiece: %w", md, err)
	}

	return dp1, dp2, nil
}

// generateRaw evaluates every mode in modes on grid g. The dominant mode, if
// listed, is built first on the calling goroutine and its orbital phase is
// fixed before any higher mode starts; higher modes then run on at most
// workers goroutines. Either every mode succeeds or no Set is returned.
func (m *Model) generateRaw(ctx context.Context, g *Grid, x []float64, modes []waveform.Mode, norm float64, workers int) (waveform.Set, error) {
	out := waveform.NewSet(g.Time)

	var phase []float64
	higher := make([]waveform.Mode, 0, len(modes))
	for _, md := range modes {
		if md != waveform.Dominant {
			higher = append(higher, md)
			continue
		}
		dp1, dp2, err := evalPieces(g, x, md)
		if err != nil {
			return waveform.Set{}, err
		}
		h22, err := compose(dp1, dp2, m.variant.Dominant, md, nil)
		if err != nil {
			return waveform.Set{}, err
		}
		if m.variant.PhaseSource == PreConvention {
			phase = waveform.OrbitalPhase(h22)
			h22 = applyConvention(h22, norm)
		} else {
			h22 = applyConvention(h22, norm)
			phase = waveform.OrbitalPhase(h22)
		}
		out.Modes[md] = h22
	}

	if m.variant.Higher == ReImInline && len(higher) > 0 && phase == nil {
		return waveform.Set{}, fmt.Errorf("generateRaw: %w", waveform.ErrMissingDominantMode)
	}

	results := make([][]complex128, len(higher))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, md := range higher {
		i, md := i, md
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dp1, dp2, err := evalPieces(g, x, md)
			if err != nil {
				return err
			}
			h, err := reconstructMode(dp1, dp2, m.variant.Higher, md, phase, norm)
			if err != nil {
				return err
			}
			results[i] = h
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return waveform.Set{}, fmt.Errorf("generateRaw: %w", err)
	}
	for i, md := range higher {
		out.Modes[md] = results[i]
	}

	return out, nil
}
