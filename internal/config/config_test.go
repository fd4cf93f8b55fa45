package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bhptsur.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.Equal(t, DefaultWorkers(), cfg.Eval.Workers)
	assert.True(t, cfg.Eval.Calibrate)
	assert.Equal(t, FormatTSV, cfg.Output.Format)
	assert.Empty(t, cfg.Model.Path)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
model:
  synthetic: BHPTNRSur2dq1e3
eval:
  workers: 3
  calibrate: false
output:
  format: json
  metrics_file: /tmp/bhptsur.prom
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "BHPTNRSur2dq1e3", cfg.Model.Synthetic)
	assert.Equal(t, 3, cfg.Eval.Workers)
	assert.False(t, cfg.Eval.Calibrate)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "/tmp/bhptsur.prom", cfg.Output.MetricsFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "eval:\n  workers: 3\n")
	t.Setenv("BHPTSUR_EVAL_WORKERS", "7")
	t.Setenv("BHPTSUR_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Eval.Workers)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":      "log:\n  level: loud\n",
		"log format": "log:\n  format: xml\n",
		"workers":    "eval:\n  workers: 0\n",
		"output":     "output:\n  format: csv\n",
		"model":      "model:\n  synthetic: NRSur7dq4\n",
		"exclusive":  "model:\n  path: a.json\n  synthetic: BHPTNRSur1dq1e4\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
