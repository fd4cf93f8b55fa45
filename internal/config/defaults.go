package config

import (
	"runtime"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"

	DefaultCalibrate    = true
	DefaultOutputFormat = FormatTSV
)

// DefaultWorkers is the evaluation worker count when none is configured.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// setDefaults registers every key with v so that BHPTSUR_* variables are
// seen by Unmarshal even when no file mentions the key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("model.path", "")
	v.SetDefault("model.synthetic", "")
	v.SetDefault("eval.workers", DefaultWorkers())
	v.SetDefault("eval.calibrate", DefaultCalibrate)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.metrics_file", "")
}
