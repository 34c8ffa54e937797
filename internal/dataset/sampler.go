package dataset

import (
	"fmt"
	"math"
)

// Source supplies uniform deviates in [0, 1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// Generate draws p.Count critters for a single class. Values are rounded
// according to mode and clamped into the domain.
func Generate(src Source, p ClassParams, label Label, d Domain, mode Rounding) ([]Point, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("class %s: %w", label, err)
	}

	points := make([]Point, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		v := p.Center + standardNormal(src)*p.Spread
		if mode == RoundInteger {
			v = RoundHalfUp(v)
		}
		points = append(points, Point{
			ID:    fmt.Sprintf("%s-%d", label, i),
			Value: d.Clamp(v, mode),
			Label: label,
		})
	}
	return points, nil
}

// GenerateClasses draws class A followed by class B.
func GenerateClasses(src Source, a, b ClassParams, d Domain, mode Rounding) ([]Point, error) {
	as, err := Generate(src, a, LabelA, d, mode)
	if err != nil {
		return nil, err
	}
	bs, err := Generate(src, b, LabelB, d, mode)
	if err != nil {
		return nil, err
	}
	return append(as, bs...), nil
}

// standardNormal returns a N(0,1) deviate via the Box-Muller transform.
// Zero uniforms are re-drawn so the logarithm stays finite.
func standardNormal(src Source) float64 {
	u := src.Float64()
	for u == 0 {
		u = src.Float64()
	}
	v := src.Float64()
	for v == 0 {
		v = src.Float64()
	}
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}
