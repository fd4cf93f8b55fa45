// Package bhptsur evaluates point-particle black hole perturbation theory
// (ppBHPT) surrogate waveforms calibrated to numerical relativity.
//
// A surrogate turns precomputed fits into the spin-weighted spherical
// harmonic modes h_lm(t) of a binary black hole inspiral and merger:
//
//	validate → raw modes → frame → NR calibration → m < 0 modes → units → sky → sum
//
// Layout:
//
//	waveform/   : Mode, Set, frame rotation, negative-m symmetry
//	fits/       : B-spline and GPR node fits, EIM basis reconstruction
//	calibration/: NR calibration forms and the alpha/beta rescaling
//	units/      : geometric ↔ SI conversion
//	harmonics/  : ₋₂Y_lm, sky projection and mode summation
//	validate/   : input checks and warnings
//	surrogate/  : Model, Variant and the Evaluate pipeline
//	models/     : BHPTNRSur1dq1e4 and BHPTNRSur2dq1e3 definitions
//	archive/    : JSON fit-data documents
//	cmd/bhptsur : command-line evaluator
//
// Quick start:
//
//	m, err := archive.LoadFile("BHPTNRSur1dq1e4.json.gz")
//	if err != nil { … }
//	res, err := m.Evaluate(ctx, surrogate.Params{MassRatio: 8},
//		surrogate.WithNegativeModes(true))
//	h22 := res.Modes[waveform.Mode{L: 2, M: 2}]
//
// Every Model is immutable and safe for concurrent Evaluate calls.
package bhptsur
