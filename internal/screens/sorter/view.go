package sorter

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/ui/components"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

// fullCards is the height the side cards need below the plot.
const fullCards = 14

func (s *SorterScreen) View(width, height int) string {
	compact := height < plotHeight(s.cfg)+fullCards
	pad := strings.Repeat(" ", plotMargin)

	sections := []string{renderPlot(s.state, s.cfg)}
	if compact {
		sections = append(sections,
			pad+s.renderMatrixLine(),
			pad+s.renderParam(s.selected, width-plotMargin*2),
		)
	} else {
		cards := lipgloss.JoinHorizontal(lipgloss.Top,
			s.renderScoreCard(),
			" ",
			s.renderParamsCard(width-plotMargin*2-lipgloss.Width(s.renderScoreCard())-1),
		)
		sections = append(sections,
			"",
			pad+components.NewAccuracyBar(s.state.Matrix.Accuracy, min(width-plotMargin*2, 60)).View(),
			"",
			indent(cards, pad),
		)
	}
	sections = append(sections, pad+s.renderStatus())

	return strings.Join(sections, "\n")
}

func (s *SorterScreen) renderMatrixLine() string {
	m := s.state.Matrix
	return fmt.Sprintf("%s  %s  %s",
		theme.Body.Render(fmt.Sprintf("TP %d  FP %d  TN %d  FN %d", m.TruePositive, m.FalsePositive, m.TrueNegative, m.FalseNegative)),
		theme.Correct.Render(fmt.Sprintf("%.1f%%", m.Accuracy)),
		theme.Hint.Render(fmt.Sprintf("best %g (%.1f%%)", s.best, s.bestAcc)),
	)
}

func (s *SorterScreen) renderScoreCard() string {
	m := s.state.Matrix
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{
		theme.Correct.Render(fmt.Sprintf("TP %3d", m.TruePositive)) + "   " +
			theme.Incorrect.Render(fmt.Sprintf("FP %3d", m.FalsePositive)),
		theme.Correct.Render(fmt.Sprintf("TN %3d", m.TrueNegative)) + "   " +
			theme.Incorrect.Render(fmt.Sprintf("FN %3d", m.FalseNegative)),
		dim.Render(fmt.Sprintf("best %g → %.1f%%", s.best, s.bestAcc)),
		"",
	}
	for _, label := range dataset.AllLabels() {
		cs := s.state.Summary(label)
		color := theme.ClassA
		if label == dataset.LabelB {
			color = theme.ClassB
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(
			fmt.Sprintf("%s n=%d μ=%.1f σ=%.1f", label.Icon(), cs.Count, cs.Mean, cs.StdDev)))
	}
	if n := len(s.state.Overflow()); n > 0 {
		lines = append(lines, dim.Render(fmt.Sprintf("▴ %d over cap", n)))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *SorterScreen) renderParamsCard(width int) string {
	inner := max(width-6, 24)
	lines := make([]string, 0, len(params)+2)
	for i := range params {
		lines = append(lines, s.renderParam(i, inner))
	}
	lines = append(lines, "", theme.Hint.Render("1-9 scenario · 0 reset threshold"))
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *SorterScreen) renderParam(i, width int) string {
	return params[i].slider(s.state.Params, s.cfg.Domain).View(width, i == s.selected)
}

func (s *SorterScreen) renderStatus() string {
	switch {
	case s.input != nil:
		return theme.Body.Render("threshold: ") + s.input.View()
	case s.err != nil:
		return theme.Incorrect.Render(s.err.Error())
	case s.status != "":
		return theme.Hint.Render(s.status)
	}
	return ""
}

func indent(block, pad string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
