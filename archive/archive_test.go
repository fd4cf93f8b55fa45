package archive_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bhptsur/archive"
	"github.com/katalvlaran/bhptsur/calibration"
	"github.com/katalvlaran/bhptsur/internal/synth"
	"github.com/katalvlaran/bhptsur/models"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthetic(d models.Definition) *archive.Archive {
	cal := synth.Calibration(d.Form, d.MaxCalibratedL)
	return &archive.Archive{Definition: d, Data: synth.Data(d.Variant, cal)}
}

func encode(t *testing.T, a *archive.Archive) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, archive.Encode(&buf, a))
	return buf.Bytes()
}

// edit decodes raw into a generic map, applies f and re-encodes.
func edit(t *testing.T, raw []byte, f func(map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	f(doc)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func TestLoad_EvaluatesLikeSource(t *testing.T) {
	for _, d := range []models.Definition{models.BHPTNRSur1dq1e4(), models.BHPTNRSur2dq1e3()} {
		t.Run(d.Variant.Name, func(t *testing.T) {
			a := synthetic(d)
			want, err := a.Model()
			require.NoError(t, err)
			got, err := archive.Load(bytes.NewReader(encode(t, a)))
			require.NoError(t, err)

			chi := -0.2
			p := surrogate.Params{MassRatio: 30}
			if d.Variant.SpinDependent {
				p.Spin1 = &chi
			}
			r1, err := want.Evaluate(context.Background(), p)
			require.NoError(t, err)
			r2, err := got.Evaluate(context.Background(), p)
			require.NoError(t, err)
			assert.Equal(t, r1.Time, r2.Time)
			assert.Equal(t, r1.Modes, r2.Modes)
		})
	}
}

func TestSaveFile_Gzip(t *testing.T) {
	a := synthetic(models.BHPTNRSur1dq1e4())
	dir := t.TempDir()
	for _, name := range []string{"model.json", "model.json.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, archive.SaveFile(path, a))
		m, err := archive.LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, models.NameBHPTNRSur1dq1e4, m.Name())
		assert.Equal(t, a.Data.Grids[surrogate.Positive].Time, m.TimeGrid(surrogate.Positive))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := archive.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	raw := encode(t, synthetic(models.BHPTNRSur1dq1e4()))

	cases := []struct {
		name string
		edit func(map[string]any)
		want error
	}{
		{"version", func(d map[string]any) { d["format_version"] = 7 }, archive.ErrUnsupportedVersion},
		{"model", func(d map[string]any) { d["model"] = "NRHybSur3dq8" }, models.ErrUnknownModel},
		{"spin sign", func(d map[string]any) {
			grids := d["grids"].(map[string]any)
			grids["zero_spin"] = grids["positive_spin"]
		}, archive.ErrUnknownSpinSign},
		{"form", func(d map[string]any) {
			d["calibration"].(map[string]any)["form"] = "cubic"
		}, archive.ErrUnknownForm},
		{"calibration cutoff", func(d map[string]any) {
			d["calibration"].(map[string]any)["max_calibrated_l"] = 4
		}, models.ErrCalibrationMismatch},
		{"missing mode", func(d map[string]any) {
			modes := d["grids"].(map[string]any)["positive_spin"].(map[string]any)["modes"].(map[string]any)
			delete(modes, "l3_m3")
		}, surrogate.ErrMissingData},
		{"ragged basis", func(d map[string]any) {
			modes := d["grids"].(map[string]any)["positive_spin"].(map[string]any)["modes"].(map[string]any)
			first := modes["l2_m2"].(map[string]any)["first"].(map[string]any)
			basis := first["basis"].([]any)
			basis[1] = basis[1].([]any)[:3]
		}, archive.ErrRaggedMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := archive.Decode(bytes.NewReader(edit(t, raw, tc.edit)))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	raw := encode(t, synthetic(models.BHPTNRSur1dq1e4()))
	raw = edit(t, raw, func(d map[string]any) { d["comment"] = "extra" })
	_, err := archive.Decode(bytes.NewReader(raw))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "comment"))
}

func TestDecode_SpinModelNeedsBothGrids(t *testing.T) {
	raw := encode(t, synthetic(models.BHPTNRSur2dq1e3()))
	raw = edit(t, raw, func(d map[string]any) {
		delete(d["grids"].(map[string]any), "negative_spin")
	})
	_, err := archive.Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, surrogate.ErrMissingData)
}

func TestDecode_CalibrationTable(t *testing.T) {
	a, err := archive.Decode(bytes.NewReader(encode(t, synthetic(models.BHPTNRSur2dq1e3()))))
	require.NoError(t, err)
	c := a.Data.Calibration
	assert.Equal(t, calibration.SpinQuadratic.Name, c.Form.Name)
	assert.Equal(t, 4, c.MaxCalibratedL)
	assert.Len(t, c.AlphaCoeffs, 3)
	assert.InDelta(t, -0.05, c.BetaCoeffs[0], 0)
}
