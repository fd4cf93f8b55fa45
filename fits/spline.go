// SPDX-License-Identifier: MIT

package fits

import (
	"fmt"
	"math"
)

// Validate checks the FITPACK invariants of s:
// Degree ≥ 0, len(Knots) ≥ 2(Degree+1), len(Coeffs) ≥ len(Knots)−Degree−1,
// knots non-decreasing and every value finite.
// Complexity: O(len(Knots) + len(Coeffs)).
func (s *Spline) Validate() error {
	k := s.Degree
	n := len(s.Knots)
	if k < 0 {
		return fmt.Errorf("Spline.Validate: degree %d: %w", k, ErrBadSpline)
	}
	if n < 2*(k+1) {
		return fmt.Errorf("Spline.Validate: %d knots for degree %d: %w", n, k, ErrBadSpline)
	}
	if len(s.Coeffs) < n-k-1 {
		return fmt.Errorf("Spline.Validate: %d coefficients, need %d: %w", len(s.Coeffs), n-k-1, ErrBadSpline)
	}
	for i, v := range s.Knots {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Spline.Validate: knot %d: %w", i, ErrNaNInf)
		}
		if i > 0 && v < s.Knots[i-1] {
			return fmt.Errorf("Spline.Validate: knots decrease at %d: %w", i, ErrBadSpline)
		}
	}
	if s.Knots[k] == s.Knots[n-k-1] {
		return fmt.Errorf("Spline.Validate: empty base interval: %w", ErrBadSpline)
	}
	for i, v := range s.Coeffs[:n-k-1] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Spline.Validate: coefficient %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// Eval returns s(x) using de Boor's algorithm.
//
// Description:
//
//	A degree-k B-spline with knots t and coefficients c is the piecewise
//	polynomial Σ c_i·B_{i,k}(x). Only k+1 basis functions are non-zero on
//	any knot interval, so s(x) is a blend of k+1 coefficients.
//
// Algorithm Outline:
//  1. Find l with t_l ≤ x < t_{l+1}, clamped to the base interval
//     [t_k, t_{n−k−1}]. x outside it uses the first or last polynomial
//     piece (FITPACK splev extrapolation mode 0).
//  2. Copy d_j = c_{l−k+j} for j = 0..k.
//  3. For r = 1..k and j = k..r:
//     α = (x − t_i) / (t_{i+k+1−r} − t_i), i = j + l − k
//     d_j = (1 − α)·d_{j−1} + α·d_j
//  4. s(x) = d_k.
//
// A zero-width knot span contributes α = 0.
// s must have passed Validate.
//
// Complexity:
//
//	Time   = O(log n + k²)
//	Memory = O(k)
func (s *Spline) Eval(x float64) float64 {
	t := s.Knots
	k := s.Degree

	l := s.interval(x)

	d := make([]float64, k+1)
	copy(d, s.Coeffs[l-k:l+1])
	for r := 1; r <= k; r++ {
		for j := k; j >= r; j-- {
			i := j + l - k
			den := t[i+k+1-r] - t[i]
			var alpha float64
			if den != 0 {
				alpha = (x - t[i]) / den
			}
			d[j] = (1-alpha)*d[j-1] + alpha*d[j]
		}
	}

	return d[k]
}

// interval returns l with t_l ≤ x < t_{l+1}, clamped to [k, n−k−2].
func (s *Spline) interval(x float64) int {
	t := s.Knots
	k := s.Degree
	lo, hi := k, len(t)-k-2
	if x < t[lo+1] {
		return lo
	}
	if x >= t[hi] {
		return hi
	}
	// binary search for the last l in [lo, hi] with t[l] ≤ x
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
