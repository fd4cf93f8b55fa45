// SPDX-License-Identifier: MIT

package archive

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/fits"
	"github.com/katalvlaran/bhptsur/models"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/waveform"
	"gonum.org/v1/gonum/mat"
)

// Archive is decoded fit data together with the family it belongs to.
type Archive struct {
	Definition models.Definition
	Data       surrogate.Data
}

// Model binds the archive into an evaluable Model.
func (a *Archive) Model() (*surrogate.Model, error) {
	return surrogate.NewModel(a.Definition.Variant, a.Data)
}

// Decode reads one document from r and checks it against its family.
func Decode(r io.Reader) (*Archive, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("archive.Decode: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("archive.Decode: version %d: %w", doc.Version, ErrUnsupportedVersion)
	}
	def, err := models.ByName(doc.Model)
	if err != nil {
		return nil, fmt.Errorf("archive.Decode: %w", err)
	}

	a := &Archive{
		Definition: def,
		Data:       surrogate.Data{Grids: make(map[surrogate.SpinSign]*surrogate.Grid, len(doc.Grids))},
	}
	for key, gd := range doc.Grids {
		sign, err := parseSign(key)
		if err != nil {
			return nil, fmt.Errorf("archive.Decode: %w", err)
		}
		g, err := gd.grid()
		if err != nil {
			return nil, fmt.Errorf("archive.Decode: grid %s: %w", key, err)
		}
		a.Data.Grids[sign] = g
	}
	if a.Data.Calibration, err = doc.Calibration.config(); err != nil {
		return nil, fmt.Errorf("archive.Decode: calibration: %w", err)
	}
	if err = def.CheckCalibration(a.Data.Calibration); err != nil {
		return nil, fmt.Errorf("archive.Decode: %w", err)
	}
	if err = a.Data.Validate(def.Variant); err != nil {
		return nil, fmt.Errorf("archive.Decode: %w", err)
	}

	return a, nil
}

// Load decodes r and binds the result into a Model.
func Load(r io.Reader) (*surrogate.Model, error) {
	a, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return a.Model()
}

// LoadFile opens path, decompressing it when it ends in ".gz", and loads it.
func LoadFile(path string) (*surrogate.Model, error) {
	a, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return a.Model()
}

// DecodeFile is Decode on the contents of path.
func DecodeFile(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive.DecodeFile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("archive.DecodeFile %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return Decode(r)
}

// Encode writes a as an indented document.
func Encode(w io.Writer, a *Archive) error {
	doc, err := newDocument(a)
	if err != nil {
		return fmt.Errorf("archive.Encode: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("archive.Encode: %w", err)
	}
	return nil
}

// SaveFile writes a to path, gzip-compressed when path ends in ".gz".
func SaveFile(path string, a *Archive) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("archive.SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Encode(f, a)
	}
	zw := gzip.NewWriter(f)
	if err = Encode(zw, a); err != nil {
		return err
	}
	return zw.Close()
}

func parseSign(key string) (surrogate.SpinSign, error) {
	switch key {
	case surrogate.Positive.String():
		return surrogate.Positive, nil
	case surrogate.Negative.String():
		return surrogate.Negative, nil
	default:
		return 0, fmt.Errorf("%q: %w", key, ErrUnknownSpinSign)
	}
}

func modeKey(md waveform.Mode) string {
	return fmt.Sprintf("l%d_m%d", md.L, md.M)
}

func dense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fits.ErrShapeMismatch
	}
	n := len(rows[0])
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrRaggedMatrix)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), n, data), nil
}

func rows(m *mat.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

func (gd gridDoc) grid() (*surrogate.Grid, error) {
	g := &surrogate.Grid{Time: gd.Time, Modes: make(map[waveform.Mode]surrogate.ModeData, len(gd.Modes))}
	for key, m := range gd.Modes {
		md, err := waveform.ParseMode(key)
		if err != nil {
			return nil, err
		}
		first, err := m.First.datapiece()
		if err != nil {
			return nil, fmt.Errorf("mode %s first datapiece: %w", md, err)
		}
		second, err := m.Second.datapiece()
		if err != nil {
			return nil, fmt.Errorf("mode %s second datapiece: %w", md, err)
		}
		g.Modes[md] = surrogate.ModeData{First: first, Second: second}
	}
	return g, nil
}

func (pd pieceDoc) datapiece() (surrogate.Datapiece, error) {
	kind, err := fits.ParseKind(pd.Kind)
	if err != nil {
		return surrogate.Datapiece{}, err
	}
	basis, err := dense(pd.Basis)
	if err != nil {
		return surrogate.Datapiece{}, fmt.Errorf("basis: %w", err)
	}
	rec := &fits.Record{Kind: kind, Nodes: pd.Nodes}
	for _, s := range pd.Splines {
		rec.Splines = append(rec.Splines, fits.Spline{Knots: s.Knots, Coeffs: s.Coeffs, Degree: s.Degree})
	}
	for j, gp := range pd.GPRs {
		x, err := dense(gp.XTrain)
		if err != nil {
			return surrogate.Datapiece{}, fmt.Errorf("node %d x_train: %w", j, err)
		}
		rec.GPRs = append(rec.GPRs, fits.GPR{
			XTrain:       x,
			Alpha:        gp.Alpha,
			YTrainMean:   gp.YTrainMean,
			Constant:     gp.Constant,
			LengthScale:  gp.LengthScale,
			NoiseLevel:   gp.NoiseLevel,
			DataMean:     gp.DataMean,
			DataStd:      gp.DataStd,
			LinCoef:      gp.LinCoef,
			LinIntercept: gp.LinIntercept,
		})
	}
	return surrogate.Datapiece{Fit: rec, Basis: basis}, nil
}

func (cd calibrationDoc) config() (calibration.Config, error) {
	form, ok := calibration.FormByName(cd.Form)
	if !ok {
		return calibration.Config{}, fmt.Errorf("%q: %w", cd.Form, ErrUnknownForm)
	}
	c := calibration.Config{
		Form:           form,
		AlphaCoeffs:    make(map[waveform.Mode][]float64, len(cd.Alpha)),
		BetaCoeffs:     cd.Beta,
		MaxCalibratedL: cd.MaxCalibratedL,
	}
	for key, coeffs := range cd.Alpha {
		md, err := waveform.ParseMode(key)
		if err != nil {
			return calibration.Config{}, err
		}
		c.AlphaCoeffs[md] = coeffs
	}
	return c, nil
}

func newDocument(a *Archive) (*document, error) {
	doc := &document{
		Version: FormatVersion,
		Model:   a.Definition.Variant.Name,
		Grids:   make(map[string]gridDoc, len(a.Data.Grids)),
		Calibration: calibrationDoc{
			Form:           a.Data.Calibration.Form.Name,
			MaxCalibratedL: a.Data.Calibration.MaxCalibratedL,
			Alpha:          make(map[string][]float64, len(a.Data.Calibration.AlphaCoeffs)),
			Beta:           a.Data.Calibration.BetaCoeffs,
		},
	}
	for md, coeffs := range a.Data.Calibration.AlphaCoeffs {
		doc.Calibration.Alpha[modeKey(md)] = coeffs
	}

	signs := make([]surrogate.SpinSign, 0, len(a.Data.Grids))
	for s := range a.Data.Grids {
		signs = append(signs, s)
	}
	sort.Slice(signs, func(i, j int) bool { return signs[i] < signs[j] })
	for _, s := range signs {
		g := a.Data.Grids[s]
		if g == nil {
			return nil, fmt.Errorf("grid %s: %w", s, surrogate.ErrMissingData)
		}
		gd := gridDoc{Time: g.Time, Modes: make(map[string]modeDoc, len(g.Modes))}
		for md, m := range g.Modes {
			if m.First.Fit == nil || m.Second.Fit == nil {
				return nil, fmt.Errorf("grid %s mode %s: %w", s, md, surrogate.ErrMissingData)
			}
			gd.Modes[modeKey(md)] = modeDoc{First: newPieceDoc(m.First), Second: newPieceDoc(m.Second)}
		}
		doc.Grids[s.String()] = gd
	}
	return doc, nil
}

func newPieceDoc(d surrogate.Datapiece) pieceDoc {
	pd := pieceDoc{Kind: d.Fit.Kind.String(), Nodes: d.Fit.Nodes, Basis: rows(d.Basis)}
	for _, s := range d.Fit.Splines {
		pd.Splines = append(pd.Splines, splineDoc{Knots: s.Knots, Coeffs: s.Coeffs, Degree: s.Degree})
	}
	for _, gp := range d.Fit.GPRs {
		pd.GPRs = append(pd.GPRs, gprDoc{
			XTrain:       rows(gp.XTrain),
			Alpha:        gp.Alpha,
			YTrainMean:   gp.YTrainMean,
			Constant:     gp.Constant,
			LengthScale:  gp.LengthScale,
			NoiseLevel:   gp.NoiseLevel,
			DataMean:     gp.DataMean,
			DataStd:      gp.DataStd,
			LinCoef:      gp.LinCoef,
			LinIntercept: gp.LinIntercept,
		})
	}
	return pd
}
