package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/bhptsur/archive"
	"github.com/katalvlaran/bhptsur/internal/config"
	"github.com/katalvlaran/bhptsur/internal/logging"
	"github.com/katalvlaran/bhptsur/models"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [model]",
		Short: "Describe the known model families",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := FromCommand(cmd)
			if err != nil {
				return err
			}
			names := models.Names()
			if len(args) == 1 {
				names = args
			}
			infos := make([]models.Info, 0, len(names))
			for _, name := range names {
				d, err := models.ByName(name)
				if err != nil {
					return err
				}
				infos = append(infos, d.Info())
			}

			w := cmd.OutOrStdout()
			if c.Config.Output.Format == config.FormatJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFITS\tFRAME\tq\tCHI1\tMODES\tLMAX\tCALIBRATION")
			for _, in := range infos {
				chi := "-"
				if in.Spin1 != nil {
					chi = fmt.Sprintf("[%g, %g]", in.Spin1[0], in.Spin1[1])
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t[%g, %g]\t%s\t%d\t%d\t%s (l ≤ %d)\n",
					in.Name, in.FitKind, in.FramePolicy, in.MassRatio[0], in.MassRatio[1],
					chi, len(in.Modes), in.DefaultMaxL, in.CalibrationForm, in.MaxCalibratedL)
			}
			return tw.Flush()
		},
	}
}

func newModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the stored modes of the selected model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := FromCommand(cmd)
			if err != nil {
				return err
			}
			m, err := c.loadModel()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if c.Config.Output.Format == config.FormatJSON {
				names := make([]string, 0, len(m.AvailableModes()))
				for _, md := range m.AvailableModes() {
					names = append(names, md.String())
				}
				return json.NewEncoder(w).Encode(names)
			}
			for _, md := range m.AvailableModes() {
				fmt.Fprintln(w, md)
			}
			return nil
		},
	}
}

func newExportCommand() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "export PATH",
		Short: "Write the synthetic fit data of a model family as an archive",
		Long: "Write generated fit data for a model family in the archive format read by\n" +
			"--model. A path ending in .gz is compressed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := FromCommand(cmd)
			if err != nil {
				return err
			}
			a, err := syntheticArchive(variant)
			if err != nil {
				return err
			}
			if err = archive.SaveFile(args[0], a); err != nil {
				return err
			}
			c.Logger.Info("archive written", logging.String("path", args[0]), logging.String("model", variant))
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", models.NameBHPTNRSur1dq1e4, "model family")
	return cmd
}
