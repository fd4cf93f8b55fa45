package cli

import (
	"fmt"

	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/surrogate"
	"github.com/katalvlaran/bhptsur/waveform"
	"github.com/spf13/cobra"
)

type evaluateOptions struct {
	q, spin1           float64
	modes              string
	mtot, dist         float64
	phase, incl        float64
	sum, negative, raw bool
	lmax               int
}

func newEvaluateCommand() *cobra.Command {
	o := &evaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a waveform",
		Long: "Evaluate the modes of a waveform at mass ratio q, optionally in physical\n" +
			"units (--mtot, --dist) and projected on the sky (--phase, --incl).",
		Example: "  bhptsur evaluate --synthetic BHPTNRSur1dq1e4 --q 8 --modes '(2,2),(3,3)'\n" +
			"  bhptsur evaluate -m sur.json.gz --q 20 --mtot 60 --dist 400 --phase 0 --incl 1 --sum",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, o)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.q, "q", 0, "mass ratio m1/m2 ≥ 1")
	f.Float64Var(&o.spin1, "spin1", 0, "dimensionless spin of the primary (spinning models)")
	f.StringVar(&o.modes, "modes", "", "modes to evaluate, e.g. '(2,2),(3,3)' (default all)")
	f.Float64Var(&o.mtot, "mtot", 0, "total mass in solar masses")
	f.Float64Var(&o.dist, "dist", 0, "luminosity distance in Mpc")
	f.Float64Var(&o.phase, "phase", 0, "orbital phase at reference in radians")
	f.Float64Var(&o.incl, "incl", 0, "inclination in radians")
	f.BoolVar(&o.sum, "sum", false, "sum the projected modes into one strain series")
	f.BoolVar(&o.negative, "neg", false, "add m < 0 modes (default depends on the model)")
	f.BoolVar(&o.raw, "raw", false, "skip NR calibration")
	f.IntVar(&o.lmax, "lmax", 0, "largest l to evaluate (default depends on the model)")
	_ = cmd.MarkFlagRequired("q")

	return cmd
}

// params turns the flags into Params; extrinsic values are passed only when
// their flag is set.
func (o *evaluateOptions) params(cmd *cobra.Command) (surrogate.Params, error) {
	f := cmd.Flags()
	p := surrogate.Params{MassRatio: o.q}
	modes, err := waveform.ParseModeList(o.modes)
	if err != nil {
		return p, err
	}
	p.Modes = modes

	opt := func(name string, v float64) *float64 {
		if !f.Changed(name) {
			return nil
		}
		return &v
	}
	p.Spin1 = opt("spin1", o.spin1)
	p.TotalMassSolar = opt("mtot", o.mtot)
	p.DistanceMpc = opt("dist", o.dist)
	p.OrbitalPhase = opt("phase", o.phase)
	p.Inclination = opt("incl", o.incl)
	return p, nil
}

func (o *evaluateOptions) evalOptions(cmd *cobra.Command, c *Context) ([]surrogate.Option, error) {
	f := cmd.Flags()
	opts := []surrogate.Option{
		surrogate.WithLogger(c.Logger),
		surrogate.WithRecorder(c.Recorder),
		surrogate.WithWorkers(c.Config.Eval.Workers),
		surrogate.WithCalibration(c.Config.Eval.Calibrate && !o.raw),
		surrogate.WithModeSum(o.sum),
	}
	if f.Changed("neg") {
		opts = append(opts, surrogate.WithNegativeModes(o.negative))
	}
	if f.Changed("lmax") {
		if o.lmax < 2 {
			return nil, fmt.Errorf("cli: --lmax %d: must be at least 2", o.lmax)
		}
		opts = append(opts, surrogate.WithMaxL(o.lmax))
	}
	return opts, nil
}

func runEvaluate(cmd *cobra.Command, o *evaluateOptions) error {
	c, err := FromCommand(cmd)
	if err != nil {
		return err
	}
	p, err := o.params(cmd)
	if err != nil {
		return err
	}
	opts, err := o.evalOptions(cmd, c)
	if err != nil {
		return err
	}
	m, err := c.loadModel()
	if err != nil {
		return err
	}

	res, err := m.Evaluate(cmd.Context(), p, opts...)
	if err != nil {
		return err
	}
	c.Logger.Info("evaluation done",
		logging.String("eval_id", res.ID.String()),
		logging.Int("samples", len(res.Time)),
		logging.Int("warnings", len(res.Warnings)),
	)
	return writeResult(cmd.OutOrStdout(), c.Config.Output.Format, res)
}
