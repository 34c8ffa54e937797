package simulation

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/scenario"
	"github.com/abhisek/crittersort/internal/scoring"
	"github.com/abhisek/crittersort/internal/stacking"
)

// Engine runs the sorter simulation. It holds configuration and a random
// source but no simulation state; every transition takes a State and
// returns a new one.
type Engine struct {
	cfg   Config
	src   dataset.Source
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDFunc overrides how run identifiers are produced.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// New validates cfg and returns an Engine drawing from src.
func New(cfg Config, src dataset.Source, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfig)
	}
	e := &Engine{
		cfg:   cfg,
		src:   src,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initial generates the first state from the configured defaults.
func (e *Engine) Initial() (State, error) {
	s := State{Threshold: e.cfg.Domain.ClampThreshold(e.cfg.DefaultThreshold)}
	return e.Regenerate(s, e.cfg.DefaultParams)
}

// Regenerate replaces the whole point set using p and rescores at the
// current threshold.
func (e *Engine) Regenerate(s State, p Params) (State, error) {
	points, err := dataset.GenerateClasses(e.src, p.A, p.B, e.cfg.Domain, e.cfg.Rounding)
	if err != nil {
		return s, fmt.Errorf("generate: %w", err)
	}
	positioned, err := stacking.Layout(points, e.cfg.MaxStackHeight, e.cfg.TieBreak)
	if err != nil {
		return s, fmt.Errorf("layout: %w", err)
	}

	next := State{
		RunID:      e.newID(),
		Scenario:   s.Scenario,
		Params:     p,
		Threshold:  s.Threshold,
		Points:     points,
		Positioned: positioned,
		Summaries:  dataset.Summarize(points),
	}
	next.Matrix = scoring.Score(e.Scored(next), next.Threshold)
	return next, nil
}

// SetThreshold moves the threshold, clamped into [lo, hi], and rescores
// without resampling. Non-finite values leave s unchanged.
func (e *Engine) SetThreshold(s State, t float64) State {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return s
	}
	s.Threshold = e.cfg.Domain.ClampThreshold(t)
	s.Matrix = scoring.Score(e.Scored(s), s.Threshold)
	return s
}

// Nudge moves the threshold by delta steps.
func (e *Engine) Nudge(s State, delta int) State {
	return e.SetThreshold(s, s.Threshold+float64(delta)*e.cfg.StepSize)
}

// Drag sets the threshold from a pointer position.
func (e *Engine) Drag(s State, x float64, scale Scale) State {
	return e.SetThreshold(s, ThresholdFromPointer(x, scale, e.cfg.Domain))
}

// Reset returns the threshold to its configured default.
func (e *Engine) Reset(s State) State {
	return e.SetThreshold(s, e.cfg.DefaultThreshold)
}

// ApplyScenario regenerates with a preset's parameters. The preset's
// threshold is used when it has one, otherwise the default threshold.
func (e *Engine) ApplyScenario(s State, sc scenario.Scenario) (State, error) {
	s.Threshold = e.cfg.Domain.ClampThreshold(e.cfg.DefaultThreshold)
	if sc.Threshold != nil {
		s.Threshold = e.cfg.Domain.ClampThreshold(*sc.Threshold)
	}
	next, err := e.Regenerate(s, Params{A: sc.A, B: sc.B})
	if err != nil {
		return s, fmt.Errorf("scenario %q: %w", sc.Key, err)
	}
	next.Scenario = sc.Key
	return next, nil
}

// Recommend returns the optimizer's best threshold for s without applying it.
func (e *Engine) Recommend(s State) (float64, error) {
	return scoring.FindBestThreshold(e.Scored(s), e.cfg.Domain, e.cfg.StepSize)
}

// Optimize moves the threshold to the optimizer's recommendation.
func (e *Engine) Optimize(s State) (State, error) {
	t, err := e.Recommend(s)
	if err != nil {
		return s, fmt.Errorf("optimize: %w", err)
	}
	return e.SetThreshold(s, t), nil
}

// UpdateParams regenerates with p after a manual parameter change, which
// clears any applied scenario.
func (e *Engine) UpdateParams(s State, p Params) (State, error) {
	next, err := e.Regenerate(s, p)
	if err != nil {
		return s, err
	}
	next.Scenario = ""
	return next, nil
}

// Scored returns the points the scoreboard counts under the configured
// ScoreSet.
func (e *Engine) Scored(s State) []dataset.Point {
	if e.cfg.ScoreSet == ScoreKept {
		return stacking.Kept(s.Positioned)
	}
	return s.Points
}
