// Package surrogate evaluates a loaded ppBHPT surrogate waveform model.
//
// 🚀 What lives here?
//
//   - Variant : the tagged configuration of a model family: fit kind,
//     frame policy, compositions, parameter maps, bounds and defaults
//   - Data    : fit records and EIM bases per mode, one Grid per spin sign,
//     plus the NR calibration table
//   - Model   : Variant and Data bound together, immutable and shareable
//   - Evaluate: the ordered pipeline
//
// ⚙️ Pipeline
//
//	validate → raw modes → frame → calibrate → symmetrize → physical → project → sum
//
// Raw modes: the (2,2) mode is reconstructed first and fixes the orbital
// phase φ = unwrap(arg h22)/2; higher modes are then built concurrently on an
// errgroup bounded by WithWorkers. Every mode leaves the reconstructor as
// conj(h)·norm, norm being 1/q for the published models.
//
// The frame policy belongs to the Variant. Callers cannot change it per call.
//
// Complexity:
//
//   - Evaluate: O(modes · (nodes · samples)) for reconstruction, O(modes · samples)
//     for every later stage.
package surrogate
