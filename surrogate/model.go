// SPDX-License-Identifier: MIT

package surrogate

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/waveform"
)

// Model is an immutable, loaded surrogate. It is safe for concurrent use:
// Evaluate only reads the fit data.
type Model struct {
	variant Variant
	data    Data
}

// NewModel validates v and d and binds them into a Model.
// The caller must not mutate d afterwards.
func NewModel(v Variant, d Data) (*Model, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("NewModel: %w", err)
	}
	if err := d.Validate(v); err != nil {
		return nil, fmt.Errorf("NewModel %s: %w", v.Name, err)
	}
	v.Modes = append([]waveform.Mode(nil), v.Modes...)

	return &Model{variant: v, data: d}, nil
}

// Name returns the variant name.
func (m *Model) Name() string { return m.variant.Name }

// Variant returns a copy of the model's variant.
func (m *Model) Variant() Variant {
	v := m.variant
	v.Modes = m.AvailableModes()
	return v
}

// AvailableModes returns the stored modes in canonical order.
func (m *Model) AvailableModes() []waveform.Mode {
	return append([]waveform.Mode(nil), m.variant.Modes...)
}

// TimeGrid returns a copy of the time axis used for spin sign s.
func (m *Model) TimeGrid(s SpinSign) []float64 {
	g := m.grid(s)
	return append([]float64(nil), g.Time...)
}

// Calibration returns the model's calibration data.
func (m *Model) Calibration() calibration.Config { return m.data.Calibration }

func (m *Model) grid(s SpinSign) *Grid {
	if !m.variant.SpinDependent {
		s = Positive
	}
	return m.data.Grids[s]
}
