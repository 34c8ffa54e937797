package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/crittersort/internal/simulation"
)

// addSceneFlags registers the flags that pick the state a headless
// command works on.
func addSceneFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("scenario", "", "Apply a preset by key before scoring")
	f.Float64("threshold", 0, "Threshold to score at (default: preset or midpoint)")
	f.Bool("optimize", false, "Move the threshold to the best candidate before reporting")
	f.Int("width", 0, "Derive the domain from a rendering width instead of the default 30 units")
	f.Int("unit", 2, "Width of one domain unit when --width is set")
}

// sceneConfig applies --width to the engine configuration.
func sceneConfig(cmd *cobra.Command) func(*simulation.Config) {
	width, _ := cmd.Flags().GetInt("width")
	unit, _ := cmd.Flags().GetInt("unit")
	return func(cfg *simulation.Config) {
		if width > 0 {
			*cfg = cfg.WithDomain(simulation.DomainForWidth(width, unit))
		}
	}
}

// buildScene generates the state described by the scene flags.
func buildScene(cmd *cobra.Command, e *env) (simulation.State, error) {
	flags := cmd.Flags()

	s, err := e.engine.Initial()
	if err != nil {
		return s, err
	}

	if key, _ := flags.GetString("scenario"); key != "" {
		sc, err := e.catalog.Lookup(key)
		if err != nil {
			return s, err
		}
		if s, err = e.engine.ApplyScenario(s, sc); err != nil {
			return s, err
		}
	}

	if flags.Changed("threshold") {
		t, _ := flags.GetFloat64("threshold")
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return s, fmt.Errorf("--threshold must be a finite number, got %g", t)
		}
		s = e.engine.SetThreshold(s, t)
	}

	if opt, _ := flags.GetBool("optimize"); opt {
		if s, err = e.engine.Optimize(s); err != nil {
			return s, fmt.Errorf("optimize: %w", err)
		}
	}

	e.logger.WithFields(logrus.Fields{
		"run":       s.RunID,
		"scenario":  s.Scenario,
		"threshold": s.Threshold,
		"accuracy":  s.Matrix.Accuracy,
	}).Debug("scene built")
	return s, nil
}
