// SPDX-License-Identifier: MIT

// Package surrogate: functional options of Model.Evaluate.
//
// Defaults that depend on the model family (negative modes, lmax) are taken
// from the Variant; everything else has a constant default below.

package surrogate

import (
	"runtime"

	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/internal/metrics"
)

// Defaults independent of the variant.
const (
	// DefaultCalibration applies NR calibration.
	DefaultCalibration = true

	// DefaultModeSum returns per-mode series.
	DefaultModeSum = false
)

const (
	panicWorkersInvalid = "surrogate: WithWorkers: n must be positive"
	panicMaxLInvalid    = "surrogate: WithMaxL: lmax must be at least 2"
)

// Option adjusts a single evaluation.
type Option func(*options)

type options struct {
	negativeModes *bool // nil ⇒ Variant.DefaultNegativeModes
	maxL          int   // 0 ⇒ Variant.DefaultMaxL
	modeSum       bool
	calibrated    bool
	workers       int
	log           logging.Logger
	recorder      metrics.Recorder
}

// WithNegativeModes toggles derivation of the m < 0 modes.
func WithNegativeModes(on bool) Option {
	return func(o *options) { o.negativeModes = &on }
}

// WithModeSum returns the single summed strain instead of per-mode series.
// It requires all four extrinsic parameters.
func WithModeSum(on bool) Option {
	return func(o *options) { o.modeSum = on }
}

// WithMaxL drops requested modes with l > lmax. Panics on lmax < 2.
func WithMaxL(lmax int) Option {
	if lmax < 2 {
		panic(panicMaxLInvalid)
	}
	return func(o *options) { o.maxL = lmax }
}

// WithCalibration toggles NR calibration.
func WithCalibration(on bool) Option {
	return func(o *options) { o.calibrated = on }
}

// WithWorkers bounds the goroutines used for higher-mode generation.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// WithLogger routes warnings and debug traces to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRecorder reports timings and counts to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

func gatherOptions(v Variant, opts []Option) options {
	o := options{
		calibrated: DefaultCalibration,
		modeSum:    DefaultModeSum,
		workers:    runtime.GOMAXPROCS(0),
		log:        logging.Default(),
		recorder:   metrics.NewNopRecorder(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxL == 0 {
		o.maxL = v.DefaultMaxL
	}

	return o
}

func (o options) includeNegative(v Variant) bool {
	if o.negativeModes == nil {
		return v.DefaultNegativeModes
	}
	return *o.negativeModes
}
