package scoring

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/crittersort/internal/dataset"
)

func classPoints(label dataset.Label, values ...float64) []dataset.Point {
	out := make([]dataset.Point, len(values))
	for i, v := range values {
		out[i] = dataset.Point{ID: fmt.Sprintf("%s-%d", label, i), Value: v, Label: label}
	}
	return out
}

// separated returns five A critters at 1 and five B critters at 8.
func separated() []dataset.Point {
	return append(classPoints(dataset.LabelA, 1, 1, 1, 1, 1), classPoints(dataset.LabelB, 8, 8, 8, 8, 8)...)
}

func TestScore_PerfectSplit(t *testing.T) {
	m := Score(separated(), 5)
	assert.Equal(t, ConfusionMatrix{
		TruePositive:  5,
		FalsePositive: 0,
		TrueNegative:  5,
		FalseNegative: 0,
		Accuracy:      100,
	}, m)
}

func TestScore_ThresholdAtLowerBound(t *testing.T) {
	m := Score(separated(), 0)
	assert.Equal(t, 0, m.TrueNegative)
	assert.Equal(t, 5, m.FalsePositive)
	assert.Equal(t, 5, m.TruePositive)
	assert.Equal(t, 0, m.FalseNegative)
	assert.Equal(t, 50.0, m.Accuracy)
}

func TestScore_Empty(t *testing.T) {
	m := Score(nil, 3)
	assert.Equal(t, 0, m.Total())
	assert.Equal(t, 0.0, m.Accuracy)
}

func TestScore_ThresholdOutsideDomain(t *testing.T) {
	tests := []struct {
		threshold float64
		wantA     int // predicted A count
	}{
		{-100, 0},
		{100, 10},
	}
	for _, tt := range tests {
		m := Score(separated(), tt.threshold)
		if got := m.TrueNegative + m.FalseNegative; got != tt.wantA {
			t.Errorf("threshold %v: predicted A = %d, want %d", tt.threshold, got, tt.wantA)
		}
	}
}

func TestScore_ValueOnThresholdIsB(t *testing.T) {
	m := Score(classPoints(dataset.LabelA, 4), 4)
	assert.Equal(t, 1, m.FalsePositive)
}

func TestScore_SumsToTotalAndIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 5))
	for trial := 0; trial < 50; trial++ {
		var pts []dataset.Point
		n := r.IntN(100)
		for i := 0; i < n; i++ {
			label := dataset.LabelA
			if r.IntN(2) == 1 {
				label = dataset.LabelB
			}
			pts = append(pts, dataset.Point{ID: fmt.Sprintf("%s-%d", label, i), Value: float64(r.IntN(30)), Label: label})
		}
		threshold := float64(r.IntN(32)) - 1

		m := Score(pts, threshold)
		if m.Total() != len(pts) {
			t.Fatalf("trial %d: total = %d, want %d", trial, m.Total(), len(pts))
		}
		if again := Score(pts, threshold); again != m {
			t.Fatalf("trial %d: Score not idempotent: %v vs %v", trial, m, again)
		}
	}
}

func TestMisclassified(t *testing.T) {
	tests := []struct {
		p    dataset.Point
		t    float64
		want bool
	}{
		{dataset.Point{Value: 2, Label: dataset.LabelA}, 5, false},
		{dataset.Point{Value: 6, Label: dataset.LabelA}, 5, true},
		{dataset.Point{Value: 5, Label: dataset.LabelB}, 5, false},
		{dataset.Point{Value: 4, Label: dataset.LabelB}, 5, true},
	}
	for _, tt := range tests {
		if got := Misclassified(tt.p, tt.t); got != tt.want {
			t.Errorf("Misclassified(%+v, %v) = %v, want %v", tt.p, tt.t, got, tt.want)
		}
	}
}

func TestConfusionMatrix_String(t *testing.T) {
	got := Score(separated(), 5).String()
	assert.Equal(t, "TP=5 FP=0 TN=5 FN=0 accuracy=100.0%", got)
}
