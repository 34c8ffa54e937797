package dataset

import (
	"gonum.org/v1/gonum/stat"
)

// ClassSummary holds empirical statistics for one class of a generated set.
type ClassSummary struct {
	Label  Label
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize computes per-label statistics in AllLabels order. Labels with no
// points report zero mean and deviation.
func Summarize(points []Point) []ClassSummary {
	byLabel := make(map[Label][]float64, 2)
	for _, p := range points {
		byLabel[p.Label] = append(byLabel[p.Label], p.Value)
	}

	out := make([]ClassSummary, 0, 2)
	for _, l := range AllLabels() {
		vals := byLabel[l]
		s := ClassSummary{Label: l, Count: len(vals)}
		switch len(vals) {
		case 0:
		case 1:
			s.Mean = vals[0]
		default:
			s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
		}
		out = append(out, s)
	}
	return out
}
