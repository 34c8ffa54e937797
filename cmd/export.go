package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/abhisek/crittersort/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the scene to an image file",
	Long:  "Render the stacked critters and threshold to PNG, SVG, PDF, JPG, EPS or TIFF. The format follows the --out extension.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		out, _ := flags.GetString("out")
		if out == "" {
			return errors.New("--out is required")
		}

		e, err := newEnv(cmd, envOptions{configure: sceneConfig(cmd)})
		if err != nil {
			return err
		}
		defer e.close()

		s, err := buildScene(cmd, e)
		if err != nil {
			return err
		}

		opts := export.DefaultOptions()
		if title, _ := flags.GetString("title"); title != "" {
			opts.Title = title
		}
		if w, _ := flags.GetFloat64("width-cm"); w > 0 {
			opts.Width = vg.Length(w) * vg.Centimeter
		}
		if h, _ := flags.GetFloat64("height-cm"); h > 0 {
			opts.Height = vg.Length(h) * vg.Centimeter
		}

		if err := export.Save(out, s, e.cfg, opts); err != nil {
			return err
		}
		e.logger.WithField("file", out).Info("scene exported")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (threshold %g, accuracy %.1f%%)\n", out, s.Threshold, s.Matrix.Accuracy)
		return nil
	},
}

func init() {
	addSceneFlags(exportCmd)
	f := exportCmd.Flags()
	f.StringP("out", "o", "", "Output file; the extension picks the format")
	f.String("title", "", "Plot title")
	f.Float64("width-cm", 0, "Image width in centimeters")
	f.Float64("height-cm", 0, "Image height in centimeters")
}
