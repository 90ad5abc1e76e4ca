package pacing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// textbookStdDev computes the two-pass population standard deviation
func textbookStdDev(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		sq += (s - mean) * (s - mean)
	}
	return math.Sqrt(sq / float64(len(samples)))
}

func TestEstimator_EmptyIsZero(t *testing.T) {
	var e Estimator
	assert.Equal(t, 0.0, e.StdDev())
	assert.Equal(t, 0.0, e.Variance())
	assert.Equal(t, 0, e.Count)
}

func TestEstimator_MatchesPopulationStdDev(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{"single", []float64{1.25}},
		{"constant", []float64{1.1, 1.1, 1.1, 1.1}},
		{"textbook", []float64{2, 4, 4, 4, 5, 5, 7, 9}},
		{"sleep overshoot", []float64{1.02, 1.07, 1.91, 1.05, 1.12, 2.4, 1.01}},
		{"large offset", []float64{1e6 + 4, 1e6 + 7, 1e6 + 13, 1e6 + 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Estimator
			for _, s := range tt.samples {
				e.Advance(s)
			}

			assert.Equal(t, len(tt.samples), e.Count)
			assert.InDelta(t, textbookStdDev(tt.samples), e.StdDev(), 1e-9)
		})
	}
}

func TestEstimator_TextbookValue(t *testing.T) {
	var e Estimator
	for _, s := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		e.Advance(s)
	}
	assert.InDelta(t, 5.0, e.Mean, 1e-12)
	assert.InDelta(t, 2.0, e.StdDev(), 1e-12)
}

func TestEstimator_Reset(t *testing.T) {
	var e Estimator
	e.Advance(3)
	e.Advance(5)
	e.Reset()

	assert.Equal(t, Estimator{}, e)
	assert.Equal(t, 0.0, e.StdDev())
}
