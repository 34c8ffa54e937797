package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/ui/theme"
)

// The sorter needs room for a 30-unit plot plus the score and parameter
// cards. Below this the app shows a resize message instead.
const (
	MinWidth  = 80
	MinHeight = 24

	// HeaderHeight and FooterHeight are the rendered heights of the
	// bordered bars, including both border rows.
	HeaderHeight = 3
	FooterHeight = 3
)

const brand = "Critter Sorter"

// KeyHint is one "key  description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStatus is the live scoreboard shown on the right of the header.
// Nothing is drawn unless Visible is set.
type HeaderStatus struct {
	Accuracy  float64
	Threshold float64
	Scenario  string
	Visible   bool
}

// bar is the bordered strip used for both header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// IsTooSmall reports whether the terminal cannot fit the sorter.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"The herd needs more room.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// statusText renders the threshold, accuracy and scenario segments.
func statusText(status HeaderStatus) string {
	if !status.Visible {
		return ""
	}
	gap := lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ")
	segments := []string{
		lipgloss.NewStyle().Foreground(theme.ThresholdBar).Render(fmt.Sprintf("┃ %g", status.Threshold)),
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✔ %.1f%%", status.Accuracy)),
	}
	if status.Scenario != "" {
		segments = append(segments, lipgloss.NewStyle().Foreground(theme.TextDim).Render(status.Scenario))
	}
	return strings.Join(segments, gap)
}

// RenderHeader draws the brand on the left, the navigation trail in the
// middle and the scoreboard on the right. When the trail does not fit,
// only its last segment is kept.
func RenderHeader(trail string, status HeaderStatus, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + brand)
	right := statusText(status)
	inner := max(width-4, 0)

	fixed := lipgloss.Width(left) + lipgloss.Width(right) + 2
	if lipgloss.Width(trail)+fixed > inner {
		if i := strings.LastIndex(trail, " › "); i >= 0 {
			trail = trail[i+len(" › "):]
		}
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(trail)

	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar(width).Render(line)
}

// RenderFooter draws the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, padding the content so
// the frame is exactly height lines tall.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
