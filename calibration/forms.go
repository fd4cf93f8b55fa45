// SPDX-License-Identifier: MIT

package calibration

// Form is a pure functional form F(x; c) shared by alpha and beta.
// Dim is the length of x and Arity the number of coefficients c.
type Form struct {
	Name  string
	Dim   int
	Arity int
	Eval  func(x, c []float64) float64
}

// Quartic is 1 + a·x + b·x² + c·x³ + d·x⁴ in a single parameter,
// with x = 1/q for the non-spinning model.
var Quartic = Form{
	Name:  "quartic",
	Dim:   1,
	Arity: 4,
	Eval: func(x, c []float64) float64 {
		v := x[0]
		return 1 + c[0]*v + c[1]*v*v + c[2]*v*v*v + c[3]*v*v*v*v
	},
}

// SpinQuadratic is a polynomial in 1/q whose coefficients are quadratics in
// the primary spin, for x = [q, χ1]:
//
//	1 + (a0 + a1·χ + a2·χ²)/q + (b0 + b1·χ + b2·χ²)/q²
//
// It reduces to 1 in the extreme-mass-ratio limit for any spin.
var SpinQuadratic = Form{
	Name:  "spin-quadratic",
	Dim:   2,
	Arity: 6,
	Eval: func(x, c []float64) float64 {
		q, chi := x[0], x[1]
		inv := 1 / q
		first := c[0] + c[1]*chi + c[2]*chi*chi
		second := c[3] + c[4]*chi + c[5]*chi*chi
		return 1 + first*inv + second*inv*inv
	},
}

// FormByName returns the built-in form with the given name.
func FormByName(name string) (Form, bool) {
	switch name {
	case Quartic.Name:
		return Quartic, true
	case SpinQuadratic.Name:
		return SpinQuadratic, true
	default:
		return Form{}, false
	}
}
