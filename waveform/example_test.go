package waveform_test

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/waveform"
)

// ExampleExpandNegativeModes completes a one-sample Set with its m < 0
// partners, h(l,−m) = (−1)^l · conj(h(l,m)).
func ExampleExpandNegativeModes() {
	s := waveform.NewSet([]float64{0})
	s.Modes[waveform.Mode{L: 2, M: 2}] = []complex128{1 + 2i}
	s.Modes[waveform.Mode{L: 3, M: 3}] = []complex128{1 + 2i}

	full, err := waveform.ExpandNegativeModes(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(full.Modes[waveform.Mode{L: 2, M: -2}][0])
	fmt.Println(full.Modes[waveform.Mode{L: 3, M: -3}][0])
	// Output:
	// (1-2i)
	// (-1+2i)
}
