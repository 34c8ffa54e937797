package simulation

import (
	"math"

	"github.com/abhisek/crittersort/internal/dataset"
)

// Scale maps domain units to display coordinates: unit u starts at
// Origin + (u - lo) * Band.
type Scale struct {
	Origin float64
	Band   float64
}

// X returns the display coordinate of the left edge of value v.
func (s Scale) X(v float64, d dataset.Domain) float64 {
	return s.Origin + (v-d.Lo)*s.Band
}

// ThresholdFromPointer converts a pointer position into a threshold snapped
// to the nearest band edge and clamped into [lo, hi]. A non-positive band
// leaves the threshold at lo.
func ThresholdFromPointer(x float64, s Scale, d dataset.Domain) float64 {
	if s.Band <= 0 {
		return d.Lo
	}
	index := math.Floor((x-s.Origin)/s.Band + 0.5)
	return d.ClampThreshold(d.Lo + index)
}
