// Package harmonics evaluates spin-weighted spherical harmonics and uses them
// to project per-mode waveforms onto a direction on the sky.
//
// 🚀 What lives here?
//
//   - SpinWeightedYlm: ₛYₗₘ(θ, φ) in the NR/LAL sign convention
//   - Project        : h(l,m) · ₋₂Yₗₘ(ι, φ₀) for every mode of a Set
//   - Sum            : Σₗₘ of a projected Set, one complex strain h₊ − i·hₓ
//
// Summing is only meaningful after projection; un-projected mode amplitudes
// have no common observable.
//
// Complexity:
//
//   - SpinWeightedYlm: O(l)
//   - Project, Sum:    O(modes · samples)
package harmonics
