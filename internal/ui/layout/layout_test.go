package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_Status(t *testing.T) {
	out := RenderHeader("Sorter", HeaderStatus{Accuracy: 92.5, Threshold: 15, Scenario: "easy", Visible: true}, 100)
	assert.Contains(t, out, "Critter Sorter")
	assert.Contains(t, out, "92.5%")
	assert.Contains(t, out, "easy")
}

func TestRenderHeader_NoStatus(t *testing.T) {
	out := RenderHeader("Home", HeaderStatus{}, 100)
	assert.NotContains(t, out, "%")
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "o", Description: "Optimize"}}, 80)
	assert.Contains(t, out, "Optimize")
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("x", HeaderStatus{}, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 24))
	assert.True(t, IsTooSmall(80, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderHeader_TrailFallsBackToLastSegment(t *testing.T) {
	status := HeaderStatus{Accuracy: 100, Threshold: 12.5, Scenario: "unbalanced", Visible: true}

	wide := RenderHeader("Home › Sorter", status, 140)
	assert.Contains(t, wide, "Home › Sorter")

	narrow := RenderHeader("Home › Scenarios › Presets › Sorter", status, 80)
	assert.NotContains(t, narrow, "Home ›")
	assert.Contains(t, narrow, "Sorter")
	assert.Contains(t, narrow, "100.0%")
	assert.Equal(t, HeaderHeight, lipgloss.Height(narrow))
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage(60, 20)
	assert.Contains(t, out, "80 x 24")
	assert.Contains(t, out, "60 x 20")
	assert.Equal(t, 20, lipgloss.Height(out))
}
