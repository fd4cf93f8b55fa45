// Package calibration rescales raw ppBHPT waveforms so they match
// numerical-relativity simulations in the comparable-mass regime.
//
// The rescaling has two parts, both evaluated with the same model-specific
// functional form F(x; c):
//
//   - alpha_l = F(x; c_alpha[(l,l)]) multiplies every mode of angular index l.
//     Modes with l above the calibrated cutoff use alpha = 1 exactly.
//   - beta    = F(x; c_beta) multiplies the whole time axis once.
//
// Only diagonal modes (l,l) carry alpha coefficients; off-diagonal modes
// (l,m≠l) borrow the diagonal value of their l.
package calibration
