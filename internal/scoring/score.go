package scoring

import (
	"fmt"

	"github.com/abhisek/crittersort/internal/dataset"
)

// ConfusionMatrix counts outcomes of a threshold classifier. Class A is the
// negative class and class B the positive one.
type ConfusionMatrix struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int

	// Accuracy is a percentage in [0, 100]. Zero when there are no points.
	Accuracy float64
}

// Total returns the number of points scored.
func (m ConfusionMatrix) Total() int {
	return m.TruePositive + m.FalsePositive + m.TrueNegative + m.FalseNegative
}

// Correct returns the number of correctly classified points.
func (m ConfusionMatrix) Correct() int {
	return m.TruePositive + m.TrueNegative
}

func (m ConfusionMatrix) String() string {
	return fmt.Sprintf("TP=%d FP=%d TN=%d FN=%d accuracy=%.1f%%",
		m.TruePositive, m.FalsePositive, m.TrueNegative, m.FalseNegative, m.Accuracy)
}

// Predict returns the class a threshold assigns to a value.
func Predict(value, threshold float64) dataset.Label {
	if value < threshold {
		return dataset.LabelA
	}
	return dataset.LabelB
}

// Misclassified reports whether the threshold puts p on the wrong side.
func Misclassified(p dataset.Point, threshold float64) bool {
	return Predict(p.Value, threshold) != p.Label
}

// Score builds the confusion matrix for points split at threshold.
func Score(points []dataset.Point, threshold float64) ConfusionMatrix {
	var m ConfusionMatrix
	for _, p := range points {
		predicted := Predict(p.Value, threshold)
		if p.Label == dataset.LabelA {
			if predicted == dataset.LabelA {
				m.TrueNegative++
			} else {
				m.FalsePositive++
			}
		} else {
			if predicted == dataset.LabelB {
				m.TruePositive++
			} else {
				m.FalseNegative++
			}
		}
	}
	m.Accuracy = accuracy(m.Correct(), m.Total())
	return m
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}
