// SPDX-License-Identifier: MIT

package fits

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kind selects the family of node fits stored in a Record.
type Kind int

const (
	// KindSpline marks univariate B-spline fits in a scalar parameter.
	KindSpline Kind = iota

	// KindGPR marks Gaussian-process posterior means in a vector parameter.
	KindGPR
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSpline:
		return "spline"
	case KindGPR:
		return "gpr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "spline", "spline_1d", "gpr" and "GPR_fits".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spline", "spline_1d":
		return KindSpline, nil
	case "gpr", "gpr_fits":
		return KindGPR, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownFitKind)
	}
}

// Spline is one univariate B-spline in FITPACK representation.
// Only the first len(Knots)-Degree-1 coefficients are used.
type Spline struct {
	Knots  []float64
	Coeffs []float64
	Degree int
}

// GPR is the posterior mean of one trained Gaussian-process regressor.
//
// Kernel: Constant · exp(−½ Σ_d ((x_d − x'_d)/ℓ_d)²) + White.
// LengthScale holds one value (isotropic) or one per input dimension.
// The White term is zero away from the training inputs and does not enter
// the prediction.
type GPR struct {
	XTrain      *mat.Dense // n × d training inputs
	Alpha       []float64  // n dual coefficients K⁻¹(y − ȳ)
	YTrainMean  float64
	Constant    float64
	LengthScale []float64
	NoiseLevel  float64

	// Output normalization applied to the GP prediction.
	DataMean float64
	DataStd  float64

	// Linear trend added on top of the GP.
	LinCoef      []float64
	LinIntercept float64
}

// Record is the fit data of one datapiece: one fit per EIM node.
type Record struct {
	Kind    Kind
	Nodes   []int
	Splines []Spline
	GPRs    []GPR
}

// NumNodes returns the number of EIM nodes.
func (r *Record) NumNodes() int {
	return len(r.Nodes)
}
