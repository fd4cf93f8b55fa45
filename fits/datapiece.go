// SPDX-License-Identifier: MIT

package fits

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks that r carries one well-formed fit per EIM node.
func (r *Record) Validate() error {
	switch r.Kind {
	case KindSpline:
		if len(r.Splines) != len(r.Nodes) {
			return fmt.Errorf("Record.Validate: %d splines for %d nodes: %w", len(r.Splines), len(r.Nodes), ErrShapeMismatch)
		}
		for j := range r.Splines {
			if err := r.Splines[j].Validate(); err != nil {
				return fmt.Errorf("Record.Validate: node %d: %w", j, err)
			}
		}
	case KindGPR:
		if len(r.GPRs) != len(r.Nodes) {
			return fmt.Errorf("Record.Validate: %d GPRs for %d nodes: %w", len(r.GPRs), len(r.Nodes), ErrShapeMismatch)
		}
		for j := range r.GPRs {
			if err := r.GPRs[j].Validate(); err != nil {
				return fmt.Errorf("Record.Validate: node %d: %w", j, err)
			}
		}
	default:
		return fmt.Errorf("Record.Validate: %w", ErrUnknownFitKind)
	}
	if len(r.Nodes) == 0 {
		return fmt.Errorf("Record.Validate: no EIM nodes: %w", ErrShapeMismatch)
	}

	return nil
}

// EvalNodes evaluates every node fit at x and returns the values ordered by
// EIM node. Spline records use x[0]; GPR records use the whole vector.
//
// Errors:
//   - ErrDimension for an empty x or a GPR dimension mismatch.
//   - ErrUnknownFitKind for an unsupported Kind.
//
// Complexity: O(nodes · cost(fit)).
func (r *Record) EvalNodes(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("EvalNodes: empty parameter vector: %w", ErrDimension)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("EvalNodes: %w", ErrNaNInf)
		}
	}

	out := make([]float64, len(r.Nodes))
	switch r.Kind {
	case KindSpline:
		for j := range r.Splines {
			out[j] = r.Splines[j].Eval(x[0])
		}
	case KindGPR:
		for j := range r.GPRs {
			if d := r.GPRs[j].Dim(); d != len(x) {
				return nil, fmt.Errorf("EvalNodes: node %d expects %d parameters, got %d: %w", j, d, len(x), ErrDimension)
			}
			out[j] = r.GPRs[j].Predict(x)
		}
	default:
		return nil, fmt.Errorf("EvalNodes: %w", ErrUnknownFitKind)
	}

	return out, nil
}

// Reconstruct returns Bᵀ·v, the full-length datapiece for node values v.
// basis has shape len(v) × samples.
// Complexity: O(len(v) · samples).
func Reconstruct(basis *mat.Dense, v []float64) ([]float64, error) {
	if basis == nil {
		return nil, fmt.Errorf("Reconstruct: %w", ErrNilBasis)
	}
	r, c := basis.Dims()
	if r != len(v) {
		return nil, fmt.Errorf("Reconstruct: basis has %d rows for %d node values: %w", r, len(v), ErrShapeMismatch)
	}

	var out mat.VecDense
	out.MulVec(basis.T(), mat.NewVecDense(r, v))

	series := make([]float64, c)
	copy(series, out.RawVector().Data)

	return series, nil
}

// EvaluateDatapiece evaluates rec at x on its EIM nodes and projects the
// node values through basis: h = Bᵀ · [fit_j(x)]_j.
// It has no side effects; rec and basis are only read.
func EvaluateDatapiece(x []float64, rec *Record, basis *mat.Dense) ([]float64, error) {
	vals, err := rec.EvalNodes(x)
	if err != nil {
		return nil, err
	}

	return Reconstruct(basis, vals)
}
