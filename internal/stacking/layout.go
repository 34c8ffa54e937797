package stacking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/crittersort/internal/dataset"
)

// ErrInvalidHeight is returned when the stack cap is zero or negative.
var ErrInvalidHeight = errors.New("max stack height must be positive")

// TieBreak selects how slots are ordered inside a single value bucket.
type TieBreak int

const (
	// TieBreakInput assigns slots in input order.
	TieBreakInput TieBreak = iota
	// TieBreakValue assigns lower slots to lower raw values, stable on input order.
	TieBreakValue
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakInput:
		return "input"
	case TieBreakValue:
		return "value"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// PositionedPoint is a point with its vertical rank in its column.
type PositionedPoint struct {
	dataset.Point
	Slot int
}

// Column returns the bucket key the point was stacked in.
func (p PositionedPoint) Column() float64 {
	return dataset.RoundHalfUp(p.Value)
}

// Layout assigns stack slots to points bucketed by rounded value. Points
// whose slot would reach maxStackHeight are left out of the result; the
// input slice is never modified. The result preserves input order.
func Layout(points []dataset.Point, maxStackHeight int, tb TieBreak) ([]PositionedPoint, error) {
	if maxStackHeight <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHeight, maxStackHeight)
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	if tb == TieBreakValue {
		sort.SliceStable(order, func(i, j int) bool {
			return points[order[i]].Value < points[order[j]].Value
		})
	}

	slots := make([]int, len(points))
	counts := make(map[float64]int)
	for _, idx := range order {
		key := dataset.RoundHalfUp(points[idx].Value)
		slots[idx] = counts[key]
		counts[key]++
	}

	out := make([]PositionedPoint, 0, len(points))
	for i, p := range points {
		if slots[i] >= maxStackHeight {
			continue
		}
		out = append(out, PositionedPoint{Point: p, Slot: slots[i]})
	}
	return out, nil
}

// Kept strips positions from a layout result.
func Kept(positioned []PositionedPoint) []dataset.Point {
	out := make([]dataset.Point, len(positioned))
	for i, p := range positioned {
		out[i] = p.Point
	}
	return out
}

// Overflow returns the points that did not fit under the stack cap, in
// input order.
func Overflow(points []dataset.Point, positioned []PositionedPoint) []dataset.Point {
	kept := make(map[string]bool, len(positioned))
	for _, p := range positioned {
		kept[p.ID] = true
	}
	var out []dataset.Point
	for _, p := range points {
		if !kept[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// ColumnHeights returns the number of kept points per column.
func ColumnHeights(positioned []PositionedPoint) map[float64]int {
	heights := make(map[float64]int)
	for _, p := range positioned {
		heights[p.Column()]++
	}
	return heights
}
