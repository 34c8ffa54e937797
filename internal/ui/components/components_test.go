package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func testMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "OFF", Disabled: true},
		{Label: "ONE", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("one") } }},
		{Label: "TWO", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("two") } }},
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "disabled first item cannot be selected")

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_Enter(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("one"), cmd())
	assert.Equal(t, []string{"OFF", "ONE", "TWO"}, m.Labels())
	assert.Contains(t, m.View(), "▸ ONE")
}

func TestProgressBar_Width(t *testing.T) {
	bar := NewAccuracyBar(50, 40)
	out := bar.View()
	assert.Contains(t, out, "50.0%")
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("threshold", true, 8)
	for _, r := range "1x2.5" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "12.5", ti.Value())
	v, err := ti.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)
}

func TestSlider_Nudge(t *testing.T) {
	s := Slider{Label: "center", Value: 28, Min: 0, Max: 29, Step: 1}
	s = s.Nudge(5)
	assert.Equal(t, 29.0, s.Value)
	s = s.Nudge(-40)
	assert.Equal(t, 0.0, s.Value)
	assert.Contains(t, s.View(40, true), "center")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 72, ContentWidth(200))
	assert.Equal(t, 44, ContentWidth(50))
}
