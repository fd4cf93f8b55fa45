// SPDX-License-Identifier: MIT

package fits

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Validate checks the shapes and finiteness of a GPR descriptor.
// Complexity: O(n·d).
func (g *GPR) Validate() error {
	if g.XTrain == nil {
		return fmt.Errorf("GPR.Validate: nil training inputs: %w", ErrBadGPR)
	}
	n, d := g.XTrain.Dims()
	if len(g.Alpha) != n {
		return fmt.Errorf("GPR.Validate: %d dual coefficients for %d training points: %w", len(g.Alpha), n, ErrShapeMismatch)
	}
	if len(g.LengthScale) != 1 && len(g.LengthScale) != d {
		return fmt.Errorf("GPR.Validate: %d length scales for dimension %d: %w", len(g.LengthScale), d, ErrShapeMismatch)
	}
	for _, ls := range g.LengthScale {
		if !(ls > 0) || math.IsInf(ls, 0) {
			return fmt.Errorf("GPR.Validate: length scale %g: %w", ls, ErrBadGPR)
		}
	}
	if len(g.LinCoef) != 0 && len(g.LinCoef) != d {
		return fmt.Errorf("GPR.Validate: %d trend coefficients for dimension %d: %w", len(g.LinCoef), d, ErrShapeMismatch)
	}
	if g.DataStd == 0 || math.IsNaN(g.DataStd) || math.IsInf(g.DataStd, 0) {
		return fmt.Errorf("GPR.Validate: data std %g: %w", g.DataStd, ErrBadGPR)
	}
	if floats.HasNaN(g.Alpha) || math.IsNaN(g.Constant) || math.IsNaN(g.YTrainMean) || math.IsNaN(g.DataMean) {
		return fmt.Errorf("GPR.Validate: %w", ErrNaNInf)
	}

	return nil
}

// Dim returns the input dimension of the regressor.
func (g *GPR) Dim() int {
	_, d := g.XTrain.Dims()
	return d
}

// Predict returns the posterior mean at x:
//
//	ŷ = (Σ_i C·exp(−½‖(x − X_i)/ℓ‖²)·α_i + ȳ) · σ_data + μ_data + w·x + b
//
// g must have passed Validate. len(x) must equal Dim().
// Complexity: O(n·d).
func (g *GPR) Predict(x []float64) float64 {
	n, d := g.XTrain.Dims()

	k := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		var sq float64
		for j := 0; j < d; j++ {
			ls := g.LengthScale[0]
			if len(g.LengthScale) > 1 {
				ls = g.LengthScale[j]
			}
			z := (x[j] - g.XTrain.At(i, j)) / ls
			sq += z * z
		}
		k.SetVec(i, g.Constant*math.Exp(-0.5*sq))
	}

	y := mat.Dot(k, mat.NewVecDense(n, g.Alpha)) + g.YTrainMean
	y = y*g.DataStd + g.DataMean
	if len(g.LinCoef) > 0 {
		y += floats.Dot(g.LinCoef, x[:d])
	}

	return y + g.LinIntercept
}
