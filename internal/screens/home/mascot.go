package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

const mascotA = `╭─────╮
│ ● ● │
│  ◡  │
╰┬───┬╯
 ╵   ╵`

const mascotB = `╱▔▔▔▔▔╲
│ ◆ ◆ │
│  ▭  │
╲▁┬─┬▁╱
  ╵ ╵`

// RenderMascot returns the critter art for label in its class color.
func RenderMascot(label dataset.Label) string {
	art, fg := mascotA, theme.ClassA
	if label == dataset.LabelB {
		art, fg = mascotB, theme.ClassB
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// renderMascotBox puts one critter of each class on either side of a fence.
func renderMascotBox(cw int) string {
	fence := lipgloss.NewStyle().
		Foreground(theme.ThresholdBar).
		Render("┃\n┃\n┃\n┃\n┃")
	row := lipgloss.JoinHorizontal(lipgloss.Bottom,
		RenderMascot(dataset.LabelA), "   ", fence, "   ", RenderMascot(dataset.LabelB))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(row)
}
