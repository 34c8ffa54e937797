package sorter

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/crittersort/internal/logging"
	"github.com/abhisek/crittersort/internal/scenario"
	"github.com/abhisek/crittersort/internal/screen"
	"github.com/abhisek/crittersort/internal/scoring"
	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/ui/components"
	"github.com/abhisek/crittersort/internal/ui/layout"
)

// Deps are the shared services every sorter screen needs.
type Deps struct {
	Engine  *simulation.Engine
	Catalog *scenario.Catalog
	Logger  logrus.FieldLogger
}

func (d Deps) logger() logrus.FieldLogger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

// SorterScreen is the interactive threshold playground.
type SorterScreen struct {
	deps  Deps
	cfg   simulation.Config
	state simulation.State

	best    float64
	bestAcc float64

	selected int
	input    *components.TextInput
	dragging bool

	status string
	err    error
}

var (
	_ screen.Screen          = (*SorterScreen)(nil)
	_ screen.KeyHintProvider = (*SorterScreen)(nil)
	_ screen.StatusProvider  = (*SorterScreen)(nil)
	_ screen.InputCapturer   = (*SorterScreen)(nil)
)

// New creates a SorterScreen. With a preset it starts from that scenario,
// otherwise from the engine defaults.
func New(deps Deps, preset *scenario.Scenario) *SorterScreen {
	s := &SorterScreen{
		deps: deps,
		cfg:  deps.Engine.Config(),
	}

	state, err := deps.Engine.Initial()
	if err == nil && preset != nil {
		state, err = deps.Engine.ApplyScenario(state, *preset)
	}
	if err != nil {
		s.fail("start", err)
	}
	s.state = state
	s.refresh()

	deps.logger().WithFields(logrus.Fields{
		"run":      s.state.RunID,
		"scenario": s.state.Scenario,
	}).Info("sorter started")
	return s
}

// State returns the current simulation state.
func (s *SorterScreen) State() simulation.State {
	return s.state
}

func (s *SorterScreen) Init() tea.Cmd {
	return nil
}

func (s *SorterScreen) Title() string {
	return "Sorter"
}

// CapturingInput is true while the threshold input is open.
func (s *SorterScreen) CapturingInput() bool {
	return s.input != nil
}

func (s *SorterScreen) HeaderStatus() layout.HeaderStatus {
	return layout.HeaderStatus{
		Accuracy:  s.state.Matrix.Accuracy,
		Threshold: s.state.Threshold,
		Scenario:  s.scenarioName(),
		Visible:   true,
	}
}

func (s *SorterScreen) KeyHints() []layout.KeyHint {
	if s.input != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Threshold"},
		{Key: "↑↓", Description: "Param"},
		{Key: "+/-", Description: "Adjust"},
		{Key: "o", Description: "Optimize"},
		{Key: "r", Description: "Reroll"},
		{Key: "t", Description: "Type"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SorterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.input != nil {
		return s, s.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		s.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft && msg.Y >= layout.HeaderHeight {
			s.dragging = true
			s.drag(msg.X)
		}

	case tea.MouseMotionMsg:
		if s.dragging {
			s.drag(msg.X)
		}

	case tea.MouseReleaseMsg:
		s.dragging = false
	}
	return s, nil
}

func (s *SorterScreen) handleKey(msg tea.KeyPressMsg) {
	e := s.deps.Engine
	switch key := msg.String(); key {
	case "left", "h":
		s.moveThreshold(e.Nudge(s.state, -1), "nudge")
	case "right", "l":
		s.moveThreshold(e.Nudge(s.state, 1), "nudge")
	case "up", "k":
		s.selected = max(0, s.selected-1)
	case "down", "j":
		s.selected = min(len(params)-1, s.selected+1)
	case "+", "=":
		s.adjust(1)
	case "-", "_":
		s.adjust(-1)
	case "o":
		next, err := e.Optimize(s.state)
		if err != nil {
			s.fail("optimize", err)
			return
		}
		s.moveThreshold(next, "optimize")
		s.status = fmt.Sprintf("optimized to %g", s.state.Threshold)
	case "0":
		s.moveThreshold(e.Reset(s.state), "reset")
		s.status = "threshold reset"
	case "r":
		next, err := e.Regenerate(s.state, s.state.Params)
		s.replaceState(next, err, "regenerate")
	case "t":
		ti := components.NewTextInput(fmt.Sprintf("%g", s.state.Threshold), true, 8)
		s.input = &ti
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			s.applyScenario(int(key[0] - '1'))
		}
	}
}

func (s *SorterScreen) updateInput(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if ok {
		switch kmsg.String() {
		case "esc":
			s.input = nil
			return nil
		case "enter":
			v, err := s.input.FloatValue()
			if err != nil {
				s.input.Submit(false)
				s.status = "enter a number"
				return nil
			}
			s.input = nil
			s.moveThreshold(s.deps.Engine.SetThreshold(s.state, v), "input")
			return nil
		}
	}
	var cmd tea.Cmd
	*s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SorterScreen) drag(x int) {
	s.moveThreshold(s.deps.Engine.Drag(s.state, float64(x), plotScale()), "drag")
}

func (s *SorterScreen) adjust(delta int) {
	p := params[s.selected]
	next, err := s.deps.Engine.UpdateParams(s.state, p.adjust(s.state.Params, s.cfg.Domain, delta))
	s.replaceState(next, err, "params")
	if err == nil {
		s.status = fmt.Sprintf("%s → %g", p.name(), p.slider(s.state.Params, s.cfg.Domain).Value)
	}
}

func (s *SorterScreen) applyScenario(i int) {
	if s.deps.Catalog == nil {
		return
	}
	sc, ok := s.deps.Catalog.At(i)
	if !ok {
		return
	}
	next, err := s.deps.Engine.ApplyScenario(s.state, sc)
	s.replaceState(next, err, "scenario")
	if err == nil {
		s.status = "scenario: " + sc.Name
	}
}

// moveThreshold adopts a state whose points are unchanged.
func (s *SorterScreen) moveThreshold(next simulation.State, source string) {
	if next.Threshold == s.state.Threshold {
		s.state = next
		return
	}
	s.state = next
	s.err = nil
	s.status = ""
	s.deps.logger().WithFields(logrus.Fields{
		"source":    source,
		"threshold": next.Threshold,
		"accuracy":  next.Matrix.Accuracy,
	}).Debug("threshold moved")
}

// replaceState adopts a regenerated state and recomputes the recommendation.
func (s *SorterScreen) replaceState(next simulation.State, err error, op string) {
	if err != nil {
		s.fail(op, err)
		return
	}
	s.state = next
	s.err = nil
	s.status = ""
	s.refresh()
	s.deps.logger().WithFields(logrus.Fields{
		"op":       op,
		"run":      next.RunID,
		"scenario": next.Scenario,
		"accuracy": next.Matrix.Accuracy,
	}).Info("points regenerated")
}

func (s *SorterScreen) refresh() {
	best, err := s.deps.Engine.Recommend(s.state)
	if err != nil {
		s.fail("recommend", err)
		return
	}
	s.best = best
	s.bestAcc = scoring.Score(s.deps.Engine.Scored(s.state), best).Accuracy
}

func (s *SorterScreen) fail(op string, err error) {
	s.err = fmt.Errorf("%s: %w", op, err)
	s.deps.logger().WithError(err).WithField("op", op).Warn("sorter operation failed")
}

func (s *SorterScreen) scenarioName() string {
	if s.state.Scenario == "" {
		return "custom"
	}
	if s.deps.Catalog != nil {
		if sc, err := s.deps.Catalog.Lookup(s.state.Scenario); err == nil {
			return sc.Name
		}
	}
	return s.state.Scenario
}
