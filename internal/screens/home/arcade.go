package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/ui/components"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

const arcadeTitleFull = ` ▄▀▀ █▀▄ █ ▀█▀ ▀█▀ ██▀ █▀▄
 ▀▄▄ █▀▄ █  █   █  █▄▄ █▀▄
  ▄▀▀ ▄▀▄ █▀▄ ▀█▀ ██▀ █▀▄
  ▄██ ▀▄▀ █▀▄  █  █▄▄ █▀▄`

const arcadeTitleCompact = "C · R · I · T · T · E · R   S · O · R · T · E · R"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

// renderStatsBar summarizes the engine setup: domain, stack cap, herd
// sizes and the number of presets.
func renderStatsBar(cfg simulation.Config, presets, cw int, compact bool) string {
	domain := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	herdA := lipgloss.NewStyle().Foreground(theme.ClassA).Bold(true)
	herdB := lipgloss.NewStyle().Foreground(theme.ClassB).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	d := cfg.Domain
	p := cfg.DefaultParams
	if compact {
		return components.StatsBar([]string{
			domain.Render(fmt.Sprintf("[%g,%g)", d.Lo, d.Hi)),
			herdA.Render(fmt.Sprintf("●%d", p.A.Count)),
			herdB.Render(fmt.Sprintf("◆%d", p.B.Count)),
			dim.Render(fmt.Sprintf("▤%d", cfg.MaxStackHeight)),
		}, cw)
	}
	return components.StatsBar([]string{
		domain.Render(fmt.Sprintf("[%g, %g)", d.Lo, d.Hi)),
		herdA.Render(fmt.Sprintf("● %d", p.A.Count)),
		herdB.Render(fmt.Sprintf("◆ %d", p.B.Count)),
		dim.Render(fmt.Sprintf("CAP %d", cfg.MaxStackHeight)),
		dim.Render(fmt.Sprintf("%d PRESETS", presets)),
	}, cw)
}
