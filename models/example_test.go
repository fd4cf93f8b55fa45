package models_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bhptsur/internal/synth"
	"github.com/katalvlaran/bhptsur/models"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/waveform"
)

// Evaluate two modes of the non-spinning family at q = 8 on synthetic data.
// The model adds the m < 0 partners by default.
func Example() {
	d := models.BHPTNRSur1dq1e4()
	m, err := surrogate.NewModel(d.Variant, synth.Data(d.Variant, synth.Calibration(d.Form, d.MaxCalibratedL)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := m.Evaluate(context.Background(), surrogate.Params{
		MassRatio: 8,
		Modes:     []waveform.Mode{{L: 2, M: 2}, {L: 3, M: 3}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	got := make([]waveform.Mode, 0, len(res.Modes))
	for md := range res.Modes {
		got = append(got, md)
	}
	waveform.SortModes(got)
	fmt.Println("modes:", got)
	fmt.Println("samples:", len(res.Time))
	// Output:
	// modes: [(2,-2) (2,2) (3,-3) (3,3)]
	// samples: 256
}
