// Package cli implements the bhptsur command tree on cobra.
//
// The root command loads configuration (flags > BHPTSUR_* env > file >
// defaults), builds the zap logger and the optional Prometheus collector,
// and hands them to subcommands through the command context.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/bhptsur/archive"
	"github.com/katalvlaran/bhptsur/internal/config"
	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/internal/metrics"
	"github.com/katalvlaran/bhptsur/internal/synth"
	"github.com/katalvlaran/bhptsur/models"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// ErrNoModel is returned by commands that need a model when neither
// --model nor --synthetic is given.
var ErrNoModel = errors.New("cli: no model selected (use --model or --synthetic)")

// RootOptions holds the persistent flags.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	ModelPath   string
	Synthetic   string
	Workers     int
	Format      string
	MetricsFile string
}

// Context carries initialized dependencies through the command tree.
type Context struct {
	Config   *config.Config
	Logger   logging.Logger
	Recorder metrics.Recorder

	collector *metrics.Collector
}

type contextKey struct{}

// FromCommand returns the Context installed by the root command.
func FromCommand(cmd *cobra.Command) (*Context, error) {
	c, ok := cmd.Context().Value(contextKey{}).(*Context)
	if !ok || c == nil {
		return nil, errors.New("cli: command context not initialized")
	}
	return c, nil
}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bhptsur",
		Short: "Evaluate ppBHPT surrogate gravitational waveforms",
		Long: "bhptsur evaluates perturbation-theory surrogate waveforms calibrated to\n" +
			"numerical relativity, mode by mode or summed on the sky.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPostRun(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.ModelPath, "model", "m", "", "fit-data archive (.json or .json.gz)")
	pf.StringVar(&opts.Synthetic, "synthetic", "", "evaluate a model family on generated demo data")
	pf.IntVar(&opts.Workers, "workers", 0, "mode evaluation workers")
	pf.StringVarP(&opts.Format, "format", "o", "", "output format (tsv, json)")
	pf.StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	cmd.AddCommand(
		newEvaluateCommand(),
		newModesCommand(),
		newInfoCommand(),
		newExportCommand(),
	)
	return cmd
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	c := &Context{Config: cfg, Logger: logger.Named("bhptsur"), Recorder: metrics.NewNopRecorder()}
	if cfg.Output.MetricsFile != "" {
		if c.collector, err = metrics.NewCollector("bhptsur"); err != nil {
			return err
		}
		c.Recorder = c.collector
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, contextKey{}, c))
	return nil
}

func applyFlags(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if f.Changed("model") {
		cfg.Model.Path, cfg.Model.Synthetic = opts.ModelPath, ""
	}
	if f.Changed("synthetic") {
		cfg.Model.Synthetic, cfg.Model.Path = opts.Synthetic, ""
	}
	if f.Changed("workers") {
		cfg.Eval.Workers = opts.Workers
	}
	if f.Changed("format") {
		cfg.Output.Format = opts.Format
	}
	if f.Changed("metrics-file") {
		cfg.Output.MetricsFile = opts.MetricsFile
	}
}

func persistentPostRun(cmd *cobra.Command) error {
	c, err := FromCommand(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = c.Logger.Sync() }()
	if c.collector == nil {
		return nil
	}
	if err = c.collector.WriteTextfile(c.Config.Output.MetricsFile); err != nil {
		return err
	}
	c.Logger.Debug("metrics written", logging.String("path", c.Config.Output.MetricsFile))
	return nil
}

// loadModel opens the configured archive or builds the synthetic model.
func (c *Context) loadModel() (*surrogate.Model, error) {
	switch {
	case c.Config.Model.Path != "":
		m, err := archive.LoadFile(c.Config.Model.Path)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("model loaded",
			logging.String("model", m.Name()),
			logging.String("path", c.Config.Model.Path))
		return m, nil
	case c.Config.Model.Synthetic != "":
		a, err := syntheticArchive(c.Config.Model.Synthetic)
		if err != nil {
			return nil, err
		}
		return a.Model()
	default:
		return nil, ErrNoModel
	}
}

func syntheticArchive(name string) (*archive.Archive, error) {
	d, err := models.ByName(name)
	if err != nil {
		return nil, err
	}
	cal := synth.Calibration(d.Form, d.MaxCalibratedL)
	return &archive.Archive{Definition: d, Data: synth.Data(d.Variant, cal)}, nil
}
