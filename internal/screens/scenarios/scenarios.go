package scenarios

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/router"
	"github.com/abhisek/crittersort/internal/scenario"
	"github.com/abhisek/crittersort/internal/screen"
	"github.com/abhisek/crittersort/internal/screens/sorter"
	"github.com/abhisek/crittersort/internal/ui/components"
	"github.com/abhisek/crittersort/internal/ui/layout"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

// ScenariosScreen lists the preset catalog and opens the sorter on the
// chosen one.
type ScenariosScreen struct {
	deps    sorter.Deps
	presets []scenario.Scenario
	menu    components.Menu
}

var _ screen.Screen = (*ScenariosScreen)(nil)

// New creates a ScenariosScreen over deps.Catalog.
func New(deps sorter.Deps) *ScenariosScreen {
	s := &ScenariosScreen{deps: deps}
	if deps.Catalog != nil {
		s.presets = deps.Catalog.All()
	}

	items := make([]components.MenuItem, len(s.presets))
	for i, sc := range s.presets {
		items[i] = components.MenuItem{
			Label:  fmt.Sprintf("%d  %s", i+1, sc.Name),
			Action: s.open(sc),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ScenariosScreen) open(sc scenario.Scenario) func() tea.Cmd {
	return func() tea.Cmd {
		next := sorter.New(s.deps, &sc)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
}

func (s *ScenariosScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenariosScreen) Title() string {
	return "Scenarios"
}

func (s *ScenariosScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Sort"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScenariosScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ScenariosScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if len(s.presets) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("no scenarios loaded"))
	}

	sections := []string{
		theme.Title.Width(cw).Render("PICK A HERD"),
		components.ArcadeMenu(s.menu.Labels(), s.menu.Selected, cw, height < 24),
		components.ArcadeCard(renderDetail(s.presets[s.menu.Selected]), cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderDetail(sc scenario.Scenario) string {
	a := lipgloss.NewStyle().Foreground(theme.ClassA)
	b := lipgloss.NewStyle().Foreground(theme.ClassB)

	lines := []string{
		theme.Body.Bold(true).Render(sc.Name),
		theme.Hint.Render(sc.Description),
		"",
		a.Render(fmt.Sprintf("● center %g  spread %g  ×%d", sc.A.Center, sc.A.Spread, sc.A.Count)),
		b.Render(fmt.Sprintf("◆ center %g  spread %g  ×%d", sc.B.Center, sc.B.Spread, sc.B.Count)),
	}
	if sc.Threshold != nil {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("starts at threshold %g", *sc.Threshold)))
	}
	return strings.Join(lines, "\n")
}
