package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDomain is returned for non-finite or empty value ranges.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidParams is returned when a class center, spread or count is out of range.
	ErrInvalidParams = errors.New("invalid class parameters")
)

// Label identifies the true class of a critter.
type Label string

const (
	LabelA Label = "A" // negative class
	LabelB Label = "B" // positive class
)

// AllLabels returns the labels in display order.
func AllLabels() []Label {
	return []Label{LabelA, LabelB}
}

// DisplayName returns a human-readable label for the class.
func (l Label) DisplayName() string {
	switch l {
	case LabelA:
		return "Class A"
	case LabelB:
		return "Class B"
	default:
		return string(l)
	}
}

// Icon returns the glyph used to draw a critter of this class.
func (l Label) Icon() string {
	switch l {
	case LabelA:
		return "●"
	case LabelB:
		return "◆"
	default:
		return "•"
	}
}

// Point is a single generated critter.
type Point struct {
	ID    string
	Value float64
	Label Label
}

// Rounding selects whether sampled values snap to integers.
type Rounding int

const (
	RoundInteger Rounding = iota
	RoundReal
)

func (r Rounding) String() string {
	switch r {
	case RoundInteger:
		return "integer"
	case RoundReal:
		return "real"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// Domain is the half-open interval [Lo, Hi) of simulated values.
type Domain struct {
	Lo float64
	Hi float64
}

// Validate checks that the domain is finite and non-empty.
func (d Domain) Validate() error {
	if math.IsNaN(d.Lo) || math.IsNaN(d.Hi) || math.IsInf(d.Lo, 0) || math.IsInf(d.Hi, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidDomain)
	}
	if d.Lo >= d.Hi {
		return fmt.Errorf("%w: lo (%g) must be less than hi (%g)", ErrInvalidDomain, d.Lo, d.Hi)
	}
	return nil
}

// Width returns Hi - Lo.
func (d Domain) Width() float64 {
	return d.Hi - d.Lo
}

// Clamp forces v into the domain. Integer mode clamps into [Lo, Hi-1],
// real mode into [Lo, Hi].
func (d Domain) Clamp(v float64, mode Rounding) float64 {
	hi := d.Hi
	if mode == RoundInteger {
		hi = d.Hi - 1
	}
	return math.Max(d.Lo, math.Min(hi, v))
}

// ClampThreshold forces a threshold into the closed interval [Lo, Hi].
// NaN has no position in the domain and maps to Lo.
func (d Domain) ClampThreshold(t float64) float64 {
	if math.IsNaN(t) {
		return d.Lo
	}
	return math.Max(d.Lo, math.Min(d.Hi, t))
}

// ClassParams describes the distribution of a single class.
type ClassParams struct {
	Center float64 `json:"center" yaml:"center"`
	Spread float64 `json:"spread" yaml:"spread"`
	Count  int     `json:"count" yaml:"count"`
}

// Validate checks the parameters for contract violations.
func (p ClassParams) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidParams, p.Count)
	}
	if p.Spread < 0 || math.IsNaN(p.Spread) {
		return fmt.Errorf("%w: spread must be non-negative, got %g", ErrInvalidParams, p.Spread)
	}
	if math.IsNaN(p.Center) || math.IsInf(p.Center, 0) {
		return fmt.Errorf("%w: center must be finite", ErrInvalidParams)
	}
	return nil
}

// RoundHalfUp rounds to the nearest integer with halves going toward +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
