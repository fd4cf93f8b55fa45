// SPDX-License-Identifier: MIT

package harmonics

import (
	"math"
	"math/cmplx"
)

// SpinWeightedYlm returns ₛYₗₘ(theta, phi) in the convention used by LAL and
// the NR community (Goldberg et al. 1967 with the (−1)^m Condon–Shortley
// factor), so that e.g. ₋₂Y₂₂ = √(5/64π)·(1+cos θ)²·e^{2iφ}.
// Indices outside |s| ≤ l, |m| ≤ l yield 0.
// Complexity: O(l).
func SpinWeightedYlm(s, l, m int, theta, phi float64) complex128 {
	if l < 0 || abs(m) > l || abs(s) > l {
		return 0
	}

	c, sn := math.Cos(theta/2), math.Sin(theta/2)
	var sum float64
	for r := 0; r <= l-s; r++ {
		k := r + s - m
		if k < 0 || k > l+s {
			continue
		}
		term := binomial(l-s, r) * binomial(l+s, k)
		if (l-r-s)%2 != 0 {
			term = -term
		}
		sum += term * math.Pow(c, float64(2*r+s-m)) * math.Pow(sn, float64(2*l-2*r-s+m))
	}

	pre := math.Sqrt(factorial(l+m) * factorial(l-m) * float64(2*l+1) /
		(4 * math.Pi * factorial(l+s) * factorial(l-s)))
	if m%2 != 0 {
		pre = -pre
	}

	return complex(pre*sum, 0) * cmplx.Exp(complex(0, float64(m)*phi))
}

// factorial is exact in float64 up to 22!, which covers l ≤ 11.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return factorial(n) / (factorial(k) * factorial(n-k))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
