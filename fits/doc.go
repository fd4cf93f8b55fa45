// Package fits evaluates the precomputed parametric fits of a surrogate at
// its empirical-interpolation (EIM) nodes and reconstructs full-length
// datapieces from them.
//
// A datapiece is one real time series of one mode: amplitude, phase, real
// part or imaginary part. For every datapiece the model stores:
//
//   - a Record: one scalar fit per EIM node (Spline or GPR) plus the node
//     indices into the time grid;
//   - a basis matrix B of shape nodes × samples.
//
// Evaluation at a parameter point x is:
//
//	v_j     = fit_j(x)            for every EIM node j
//	h(t_i)  = Σ_j B[j][i] · v_j   i.e. h = Bᵀ · v
//
// Two fit kinds are supported:
//
//   - KindSpline: univariate B-splines in FITPACK (t, c, k) form, evaluated
//     with de Boor's algorithm; points outside the base interval are
//     extrapolated with the end polynomial pieces.
//   - KindGPR: Gaussian-process regression posterior means with a
//     C·RBF(ℓ) + White kernel, normalized outputs and a linear trend.
//
// Records and basis matrices are read-only after load. Every function in
// this package is pure and safe for concurrent use on shared records.
package fits
