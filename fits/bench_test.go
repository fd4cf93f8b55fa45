package fits_test

import (
	"testing"

	"github.com/katalvlaran/bhptsur/fits"
	"gonum.org/v1/gonum/mat"
)

// BenchmarkEvaluateDatapiece_Spline measures a realistic datapiece:
// 20 cubic-spline nodes projected onto 10k samples.
func BenchmarkEvaluateDatapiece_Spline(b *testing.B) {
	const nodes, samples = 20, 10000
	rec := &fits.Record{Kind: fits.KindSpline}
	for j := 0; j < nodes; j++ {
		rec.Nodes = append(rec.Nodes, j*samples/nodes)
		rec.Splines = append(rec.Splines, quadraticSpline())
	}
	data := make([]float64, nodes*samples)
	for i := range data {
		data[i] = float64(i%7) * 0.1
	}
	basis := mat.NewDense(nodes, samples, data)
	x := []float64{0.4}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fits.EvaluateDatapiece(x, rec, basis); err != nil {
			b.Fatal(err)
		}
	}
}
