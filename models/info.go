// SPDX-License-Identifier: MIT

package models

// Info is the printable summary of a Definition.
type Info struct {
	Name                 string      `json:"name"`
	Description          string      `json:"description"`
	Reference            string      `json:"reference,omitempty"`
	FitKind              string      `json:"fit_kind"`
	FramePolicy          string      `json:"frame_policy"`
	MassRatio            [2]float64  `json:"mass_ratio"`
	Spin1                *[2]float64 `json:"spin1,omitempty"`
	Modes                []string    `json:"modes"`
	DefaultMaxL          int         `json:"default_lmax"`
	DefaultNegativeModes bool        `json:"default_negative_modes"`
	CalibrationForm      string      `json:"calibration_form"`
	MaxCalibratedL       int         `json:"max_calibrated_l"`
}

// Info summarizes d.
func (d Definition) Info() Info {
	v := d.Variant
	info := Info{
		Name:                 v.Name,
		Description:          v.Description,
		Reference:            d.Reference,
		FitKind:              v.FitKind.String(),
		FramePolicy:          v.Frame.String(),
		MassRatio:            d.MassRatioRange,
		DefaultMaxL:          v.DefaultMaxL,
		DefaultNegativeModes: v.DefaultNegativeModes,
		CalibrationForm:      d.Form.Name,
		MaxCalibratedL:       d.MaxCalibratedL,
	}
	if v.SpinDependent {
		r := d.SpinRange
		info.Spin1 = &r
	}
	for _, md := range v.Modes {
		info.Modes = append(info.Modes, md.String())
	}
	return info
}
