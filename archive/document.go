// SPDX-License-Identifier: MIT

package archive

// FormatVersion is the document version written by Encode.
const FormatVersion = 1

// document is the on-disk layout. Mode keys use the "l2_m2" form.
type document struct {
	Version     int                `json:"format_version"`
	Model       string             `json:"model"`
	Grids       map[string]gridDoc `json:"grids"`
	Calibration calibrationDoc     `json:"calibration"`
}

type gridDoc struct {
	Time  []float64          `json:"time"`
	Modes map[string]modeDoc `json:"modes"`
}

type modeDoc struct {
	First  pieceDoc `json:"first"`
	Second pieceDoc `json:"second"`
}

type pieceDoc struct {
	Kind    string      `json:"kind"`
	Nodes   []int       `json:"nodes"`
	Splines []splineDoc `json:"splines,omitempty"`
	GPRs    []gprDoc    `json:"gprs,omitempty"`
	Basis   [][]float64 `json:"basis"`
}

type splineDoc struct {
	Knots  []float64 `json:"knots"`
	Coeffs []float64 `json:"coeffs"`
	Degree int       `json:"degree"`
}

type gprDoc struct {
	XTrain       [][]float64 `json:"x_train"`
	Alpha        []float64   `json:"alpha"`
	YTrainMean   float64     `json:"y_train_mean"`
	Constant     float64     `json:"constant"`
	LengthScale  []float64   `json:"length_scale"`
	NoiseLevel   float64     `json:"noise_level"`
	DataMean     float64     `json:"data_mean"`
	DataStd      float64     `json:"data_std"`
	LinCoef      []float64   `json:"lin_coef,omitempty"`
	LinIntercept float64     `json:"lin_intercept"`
}

type calibrationDoc struct {
	Form           string               `json:"form"`
	MaxCalibratedL int                  `json:"max_calibrated_l"`
	Alpha          map[string][]float64 `json:"alpha"`
	Beta           []float64            `json:"beta"`
}
