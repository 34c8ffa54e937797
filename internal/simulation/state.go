package simulation

import (
	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/scoring"
	"github.com/abhisek/crittersort/internal/stacking"
)

// State is everything the presentation layer needs to draw one frame. It
// is a plain value: engine transitions return a new State and never modify
// the one passed in. Slices are shared between states and must be treated
// as read-only.
type State struct {
	// RunID changes on every regeneration.
	RunID string

	// Scenario is the key of the preset that produced the current
	// parameters, or empty when they were set by hand.
	Scenario string

	Params    Params
	Threshold float64

	// Points is the full generated set; Positioned is the capped layout.
	Points     []dataset.Point
	Positioned []stacking.PositionedPoint

	Matrix    scoring.ConfusionMatrix
	Summaries []dataset.ClassSummary
}

// Overflow returns the generated points that did not fit under the cap.
func (s State) Overflow() []dataset.Point {
	return stacking.Overflow(s.Points, s.Positioned)
}

// IsMisclassified reports whether p falls on the wrong side of the
// current threshold.
func (s State) IsMisclassified(p dataset.Point) bool {
	return scoring.Misclassified(p, s.Threshold)
}

// Summary returns the class statistics for label.
func (s State) Summary(label dataset.Label) dataset.ClassSummary {
	for _, cs := range s.Summaries {
		if cs.Label == label {
			return cs
		}
	}
	return dataset.ClassSummary{Label: label}
}

// ParamsFor returns the generation parameters of label.
func (p Params) ParamsFor(label dataset.Label) dataset.ClassParams {
	if label == dataset.LabelB {
		return p.B
	}
	return p.A
}

// WithClass returns a copy of p with the parameters of label replaced.
func (p Params) WithClass(label dataset.Label, cp dataset.ClassParams) Params {
	if label == dataset.LabelB {
		p.B = cp
	} else {
		p.A = cp
	}
	return p
}
