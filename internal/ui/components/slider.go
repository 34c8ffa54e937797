package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/ui/theme"
)

// Slider is a labelled numeric control with a fixed step.
type Slider struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Step  float64
	Color lipgloss.Style
}

// Nudge moves the value by delta steps, clamped to [Min, Max].
func (s Slider) Nudge(delta int) Slider {
	v := s.Value + float64(delta)*s.Step
	s.Value = min(max(v, s.Min), s.Max)
	return s
}

// View renders the slider track at the given width.
func (s Slider) View(width int, selected bool) string {
	label := fmt.Sprintf("%-10s", s.Label)
	value := fmt.Sprintf("%6g", s.Value)
	if selected {
		label = theme.Selected.Render("▸ " + label)
	} else {
		label = theme.Unselected.Render("  " + label)
	}

	track := width - lipgloss.Width(label) - len(value) - 2
	if track < 4 {
		track = 4
	}
	pos := 0
	if s.Max > s.Min {
		pos = int((s.Value - s.Min) / (s.Max - s.Min) * float64(track-1))
	}
	pos = max(0, min(pos, track-1))

	bar := theme.Hint.Render(strings.Repeat("─", pos)) +
		s.Color.Render("●") +
		theme.Hint.Render(strings.Repeat("─", track-pos-1))

	return label + " " + bar + " " + theme.Body.Render(value)
}
