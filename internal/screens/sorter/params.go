package sorter

import (
	"math"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/ui/components"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

type paramField int

const (
	fieldCenter paramField = iota
	fieldSpread
	fieldCount
)

const (
	maxSpread = 10
	maxCount  = 200
	countStep = 5
)

// param addresses one adjustable generation parameter.
type param struct {
	label dataset.Label
	field paramField
}

var params = []param{
	{dataset.LabelA, fieldCenter},
	{dataset.LabelA, fieldSpread},
	{dataset.LabelA, fieldCount},
	{dataset.LabelB, fieldCenter},
	{dataset.LabelB, fieldSpread},
	{dataset.LabelB, fieldCount},
}

func (p param) name() string {
	switch p.field {
	case fieldCenter:
		return string(p.label) + " center"
	case fieldSpread:
		return string(p.label) + " spread"
	default:
		return string(p.label) + " count"
	}
}

// slider builds the control for p from the current parameters.
func (p param) slider(ps simulation.Params, d dataset.Domain) components.Slider {
	cp := ps.ParamsFor(p.label)
	color := theme.ClassA
	if p.label == dataset.LabelB {
		color = theme.ClassB
	}
	s := components.Slider{
		Label: p.name(),
		Color: lipgloss.NewStyle().Foreground(color).Bold(true),
	}
	switch p.field {
	case fieldCenter:
		s.Value, s.Min, s.Max, s.Step = cp.Center, d.Lo, math.Ceil(d.Hi)-1, 1
	case fieldSpread:
		s.Value, s.Min, s.Max, s.Step = cp.Spread, 0, maxSpread, 0.5
	case fieldCount:
		s.Value, s.Min, s.Max, s.Step = float64(cp.Count), 0, maxCount, countStep
	}
	return s
}

// adjust returns ps with p moved by delta steps.
func (p param) adjust(ps simulation.Params, d dataset.Domain, delta int) simulation.Params {
	v := p.slider(ps, d).Nudge(delta).Value
	cp := ps.ParamsFor(p.label)
	switch p.field {
	case fieldCenter:
		cp.Center = v
	case fieldSpread:
		cp.Spread = v
	case fieldCount:
		cp.Count = int(v)
	}
	return ps.WithClass(p.label, cp)
}
