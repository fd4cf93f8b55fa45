// Package config defines the configuration of the bhptsur command and loads
// it with viper from a YAML file, BHPTSUR_* environment variables and
// defaults, in decreasing priority. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/models"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// ModelConfig selects the model to load. Exactly one of Path and Synthetic
// is set.
type ModelConfig struct {
	// Path is a JSON fit-data archive, optionally gzip-compressed.
	Path string `mapstructure:"path"`

	// Synthetic names a model family evaluated on generated demo data.
	Synthetic string `mapstructure:"synthetic"`
}

// EvalConfig holds evaluation defaults.
type EvalConfig struct {
	Workers   int  `mapstructure:"workers"`
	Calibrate bool `mapstructure:"calibrate"`
}

// OutputConfig controls how results leave the process.
type OutputConfig struct {
	Format string `mapstructure:"format"` // tsv | json

	// MetricsFile, when set, receives a Prometheus text exposition after
	// every run.
	MetricsFile string `mapstructure:"metrics_file"`
}

// Config is the root configuration.
type Config struct {
	Log    logging.LogConfig `mapstructure:"log"`
	Model  ModelConfig       `mapstructure:"model"`
	Eval   EvalConfig        `mapstructure:"eval"`
	Output OutputConfig      `mapstructure:"output"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Model.Path != "" && c.Model.Synthetic != "" {
		return fmt.Errorf("model.path and model.synthetic are exclusive: %w", ErrInvalidConfig)
	}
	if c.Model.Synthetic != "" {
		if _, err := models.ByName(c.Model.Synthetic); err != nil {
			return fmt.Errorf("model.synthetic: %v: %w", err, ErrInvalidConfig)
		}
	}
	if c.Eval.Workers < 1 {
		return fmt.Errorf("eval.workers %d: %w", c.Eval.Workers, ErrInvalidConfig)
	}
	if c.Output.Format != FormatTSV && c.Output.Format != FormatJSON {
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalidConfig)
	}

	return nil
}
