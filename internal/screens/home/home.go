package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/crittersort/internal/router"
	"github.com/abhisek/crittersort/internal/screen"
	"github.com/abhisek/crittersort/internal/screens/scenarios"
	"github.com/abhisek/crittersort/internal/screens/sorter"
	"github.com/abhisek/crittersort/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps sorter.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps sorter.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START SORTING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sorter.New(deps, nil)}
			}
		}},
		{Label: "SCENARIOS", Disabled: deps.Catalog == nil || deps.Catalog.Len() == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scenarios.New(deps)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate
	// the terminal size.
	termHeight := height + 6
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	presets := 0
	if h.deps.Catalog != nil {
		presets = h.deps.Catalog.Len()
	}

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(cw))
	}
	sections = append(sections,
		renderStatsBar(h.deps.Engine.Config(), presets, cw, compact),
		components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, termHeight < 30),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
