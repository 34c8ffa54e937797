package sorter

import (
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

const (
	// cellWidth is the number of terminal columns per domain unit: a gap
	// that can hold the threshold bar, then the critter glyph.
	cellWidth = 2

	// plotMargin is the left indent of the plot within the content area.
	plotMargin = 2

	tickEvery = 5
)

// plotScale maps terminal columns back onto the domain for mouse input.
func plotScale() simulation.Scale {
	return simulation.Scale{Origin: plotMargin, Band: cellWidth}
}

// plotHeight is the number of lines renderPlot produces.
func plotHeight(cfg simulation.Config) int {
	return cfg.MaxStackHeight + 3
}

func columnCount(d dataset.Domain) int {
	return int(math.Ceil(d.Width()))
}

// barColumn is the character offset of the threshold bar. It sits in the
// gap left of the first column predicted as class B.
func barColumn(t float64, d dataset.Domain) int {
	return cellWidth * int(math.Ceil(t-d.Lo))
}

var (
	barStyle      = lipgloss.NewStyle().Foreground(theme.ThresholdBar).Bold(true)
	overflowStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	axisStyle     = lipgloss.NewStyle().Foreground(theme.Border)
)

// renderPlot draws the capped stacks as a character grid: one row per
// slot, the threshold bar, tinted predicted regions and an axis.
func renderPlot(s simulation.State, cfg simulation.Config) string {
	d := cfg.Domain
	cols := columnCount(d)
	width := cols*cellWidth + 1
	bar := barColumn(s.Threshold, d)

	grid := make([][]*dataset.Point, cfg.MaxStackHeight)
	for i := range grid {
		grid[i] = make([]*dataset.Point, cols)
	}
	for i := range s.Positioned {
		pp := &s.Positioned[i]
		col := int(pp.Column() - d.Lo)
		if col < 0 || col >= cols || pp.Slot >= cfg.MaxStackHeight {
			continue
		}
		grid[pp.Slot][col] = &pp.Point
	}

	overflow := make([]bool, cols)
	for _, p := range s.Overflow() {
		col := int(dataset.RoundHalfUp(p.Value) - d.Lo)
		if col >= 0 && col < cols {
			overflow[col] = true
		}
	}

	pad := strings.Repeat(" ", plotMargin)
	lines := make([]string, 0, plotHeight(cfg))

	var b strings.Builder
	for c := 0; c < width; c++ {
		if c%cellWidth == 1 && overflow[c/cellWidth] {
			b.WriteString(overflowStyle.Render("▴"))
		} else {
			b.WriteByte(' ')
		}
	}
	lines = append(lines, pad+b.String())

	for row := cfg.MaxStackHeight - 1; row >= 0; row-- {
		b.Reset()
		for c := 0; c < width; c++ {
			if c == bar {
				b.WriteString(barStyle.Render("┃"))
				continue
			}
			region := lipgloss.NewStyle().Background(theme.RegionA)
			if c > bar {
				region = lipgloss.NewStyle().Background(theme.RegionB)
			}
			if c%cellWidth == 1 {
				if p := grid[row][c/cellWidth]; p != nil {
					b.WriteString(critterStyle(*p, s).Inherit(region).Render(p.Label.Icon()))
					continue
				}
			}
			b.WriteString(region.Render(" "))
		}
		lines = append(lines, pad+b.String())
	}

	axis := []rune(strings.Repeat("─", width))
	labels := []rune(strings.Repeat(" ", width+3))
	for col := 0; col <= cols; col++ {
		v := int(d.Lo) + col
		if v%tickEvery != 0 {
			continue
		}
		at := col * cellWidth
		if at < width {
			axis[at] = '┴'
		}
		for i, r := range strconv.Itoa(v) {
			if at+i < len(labels) {
				labels[at+i] = r
			}
		}
	}
	if bar >= 0 && bar < width {
		axis[bar] = '╨'
	}
	lines = append(lines,
		pad+axisStyle.Render(string(axis)),
		pad+theme.Hint.Render(strings.TrimRight(string(labels), " ")),
	)

	return strings.Join(lines, "\n")
}

// critterStyle colors a critter by class, or as an error when it sits on
// the wrong side of the threshold.
func critterStyle(p dataset.Point, s simulation.State) lipgloss.Style {
	if s.IsMisclassified(p) {
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	if p.Label == dataset.LabelB {
		return lipgloss.NewStyle().Foreground(theme.ClassB)
	}
	return lipgloss.NewStyle().Foreground(theme.ClassA)
}
