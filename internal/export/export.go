package export

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/stacking"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

// Options controls the exported image.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a landscape 16x8 cm canvas.
func DefaultOptions() Options {
	return Options{
		Title:  "Critter Sorter",
		Width:  16 * vg.Centimeter,
		Height: 8 * vg.Centimeter,
	}
}

// Formats lists the file extensions Save understands.
func Formats() []string {
	return []string{"png", "svg", "pdf", "jpg", "eps", "tif"}
}

// Scene builds a plot of the stacked critters and the threshold line.
// Integer critters sit at the center of their column cell. Real-valued
// critters sit at their exact value so they fall on the same side of the
// line as their prediction.
func Scene(s simulation.State, cfg simulation.Config, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  (threshold %g, accuracy %.1f%%)", opts.Title, s.Threshold, s.Matrix.Accuracy)
	p.X.Label.Text = "value"
	p.Y.Label.Text = "stack"

	var xsA, xsB, wrong plotter.XYs
	for _, pp := range s.Positioned {
		xy := plotter.XY{X: sceneX(pp, cfg.Rounding), Y: float64(pp.Slot) + 0.5}
		if pp.Label == dataset.LabelA {
			xsA = append(xsA, xy)
		} else {
			xsB = append(xsB, xy)
		}
		if s.IsMisclassified(pp.Point) {
			wrong = append(wrong, xy)
		}
	}

	series := []struct {
		name  string
		xys   plotter.XYs
		shape draw.GlyphDrawer
		color color.Color
	}{
		{dataset.LabelA.DisplayName(), xsA, draw.CircleGlyph{}, theme.ClassA},
		{dataset.LabelB.DisplayName(), xsB, draw.PyramidGlyph{}, theme.ClassB},
		{"misclassified", wrong, draw.CrossGlyph{}, theme.Error},
	}
	for _, sr := range series {
		if len(sr.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(sr.xys)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", sr.name, err)
		}
		sc.GlyphStyle.Shape = sr.shape
		sc.GlyphStyle.Color = sr.color
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(sr.name, sc)
	}

	top := float64(cfg.MaxStackHeight)
	line, err := plotter.NewLine(plotter.XYs{{X: s.Threshold, Y: 0}, {X: s.Threshold, Y: top}})
	if err != nil {
		return nil, fmt.Errorf("threshold line: %w", err)
	}
	line.LineStyle.Color = theme.Accent
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line)
	p.Legend.Add("threshold", line)
	p.Legend.Top = true

	p.X.Min, p.X.Max = cfg.Domain.Lo, cfg.Domain.Hi
	p.Y.Min, p.Y.Max = 0, top
	p.Add(plotter.NewGrid())

	return p, nil
}

func sceneX(pp stacking.PositionedPoint, mode dataset.Rounding) float64 {
	if mode == dataset.RoundReal {
		return pp.Value
	}
	return pp.Column() + 0.5
}

// Save writes the scene to path. The format comes from the file extension.
func Save(path string, s simulation.State, cfg simulation.Config, opts Options) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	p, err := Scene(s, cfg, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save %s as %s: %w", path, format, err)
	}
	return nil
}

// Write renders the scene in format to w.
func Write(w io.Writer, format string, s simulation.State, cfg simulation.Config, opts Options) error {
	p, err := Scene(s, cfg, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func formatOf(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats() {
		if ext == f {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q (want one of %s)", ext, strings.Join(Formats(), ", "))
}
