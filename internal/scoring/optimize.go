package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/crittersort/internal/dataset"
)

// ErrInvalidStep is returned when the sweep step is not a positive finite
// number or would produce more than MaxCandidates thresholds.
var ErrInvalidStep = errors.New("invalid step size")

// stepTolerance absorbs float error when deciding whether hi is reachable.
const stepTolerance = 1e-9

// MaxCandidates bounds the number of thresholds a single sweep may visit.
const MaxCandidates = 1 << 20

// Candidates returns the thresholds swept by FindBestThreshold:
// lo, lo+step, ... up to and including hi when it lies on the grid.
func Candidates(d dataset.Domain, step float64) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: must be positive, got %g", ErrInvalidStep, step)
	}

	count := math.Floor(d.Width()/step + stepTolerance)
	if math.IsInf(count, 0) || count >= MaxCandidates {
		return nil, fmt.Errorf("%w: %g over width %g gives more than %d candidates",
			ErrInvalidStep, step, d.Width(), MaxCandidates)
	}
	n := int(count)
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, d.Lo+float64(i)*step)
	}
	return out, nil
}

// FindBestThreshold sweeps every candidate threshold and returns the one
// with the highest accuracy. Only strict improvements replace the best, so
// ties resolve to the smallest threshold. An empty point set yields d.Lo.
func FindBestThreshold(points []dataset.Point, d dataset.Domain, step float64) (float64, error) {
	candidates, err := Candidates(d, step)
	if err != nil {
		return 0, err
	}

	best := candidates[0]
	bestAcc := -1.0
	for _, t := range candidates {
		acc := Score(points, t).Accuracy
		if acc > bestAcc {
			best, bestAcc = t, acc
		}
	}
	return best, nil
}

// BestSplit finds the best threshold in O(n log n) by sorting once and
// sweeping the boundaries between consecutive distinct values. Candidate
// thresholds are the smallest value (everything predicted B), midpoints
// between distinct values, and one past the largest value (everything
// predicted A). Ties resolve to the smallest threshold. An empty set
// returns (0, 0).
func BestSplit(points []dataset.Point) (threshold, acc float64) {
	n := len(points)
	if n == 0 {
		return 0, 0
	}

	sorted := make([]dataset.Point, n)
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	totalB := 0
	for _, p := range sorted {
		if p.Label == dataset.LabelB {
			totalB++
		}
	}

	// Left of the boundary is predicted A. Start with nothing on the left.
	leftA, leftB := 0, 0
	threshold = sorted[0].Value
	bestCorrect := totalB

	for i := 0; i < n; {
		j := i
		for j < n && sorted[j].Value == sorted[i].Value {
			if sorted[j].Label == dataset.LabelA {
				leftA++
			} else {
				leftB++
			}
			j++
		}

		correct := leftA + (totalB - leftB)
		if correct > bestCorrect {
			bestCorrect = correct
			if j < n {
				threshold = (sorted[i].Value + sorted[j].Value) / 2
			} else {
				threshold = sorted[n-1].Value + 1
			}
		}
		i = j
	}

	return threshold, accuracy(bestCorrect, n)
}
