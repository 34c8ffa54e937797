package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/router"
	"github.com/abhisek/crittersort/internal/screen"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	herdEnd      = 600 * time.Millisecond
	lineEnd      = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Two herds on either side of the fence post.
const herdA = ` ●  ●
●  ● ●
 ● ●●`

const herdB = `◆ ◆
 ◆◆  ◆
◆  ◆ `

// lineFrames animate the threshold dropping between the herds.
var lineFrames = []string{"┃", "╏"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing off to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg, tea.MouseClickMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) herds() string {
	left := lipgloss.NewStyle().Foreground(theme.ClassA).Render(herdA)
	right := lipgloss.NewStyle().Foreground(theme.ClassB).Render(herdB)

	fence := "   \n   \n   "
	if w.elapsed >= herdEnd {
		bar := lineFrames[w.tickCount%len(lineFrames)]
		fence = strings.TrimSuffix(strings.Repeat(" "+bar+" \n", 3), "\n")
	}
	fence = lipgloss.NewStyle().Foreground(theme.ThresholdBar).Render(fence)

	return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", fence, "  ", right)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.herds()}

	if w.elapsed >= lineEnd {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Slide the line, sort the herd!")
		hint := theme.Hint.Render("press any key to continue")

		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
