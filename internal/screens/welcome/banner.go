package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/ui/theme"
)

const bannerArt = `
 ▄▀▀ █▀▄ █ ▀█▀ ▀█▀ ██▀ █▀▄
 ▀▄▄ █▀▄ █  █   █  █▄▄ █▀▄
  ▄▀▀ ▄▀▄ █▀▄ ▀█▀ ██▀ █▀▄
  ▄██ ▀▄▀ █▀▄  █  █▄▄ █▀▄`

const bannerCompact = "CRITTER SORTER"

// RenderBanner returns the block-letter banner, or a one-line fallback
// for terminals narrower than 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
