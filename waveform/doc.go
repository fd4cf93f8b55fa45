// Package waveform defines the per-mode waveform container shared by every
// stage of the surrogate pipeline, together with the stages that act on the
// mode structure itself.
//
// 🚀 What lives here?
//
//   - Mode: the (l, m) spherical-harmonic key, a comparable value type
//   - Set: a time axis plus a map Mode → complex time series
//   - ExpandNegativeModes: h(l,−m) = (−1)^l · conj(h(l,m))
//   - CoorbitalToInertial: h(l,m) · exp(i·m·φ) with φ taken from (2,2)
//   - OrbitalPhase / Unwrap: φ = unwrap(arg h22) / 2
//   - RotatePhase: a rigid orbital phase shift of every mode
//
// Every stage returns a fresh Set. Inputs are never mutated, so a Set
// produced by an earlier stage stays valid after later stages ran.
//
// Complexity:
//
//   - All stages are O(modes · samples) time and memory.
package waveform
