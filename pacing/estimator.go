package pacing

import "math"

// Estimator tracks running mean and variance of a sample stream (Welford)
// Zero value is ready to use
type Estimator struct {
	Count               int
	Mean                float64
	SumSquaredDeviation float64
}

// Advance ingests one sample
func (e *Estimator) Advance(sample float64) {
	e.Count++
	delta := sample - e.Mean
	e.Mean += delta / float64(e.Count)
	e.SumSquaredDeviation += delta * (sample - e.Mean)
}

// Variance returns the population variance, 0 with no samples
func (e *Estimator) Variance() float64 {
	if e.Count == 0 {
		return 0
	}
	return e.SumSquaredDeviation / float64(e.Count)
}

// StdDev returns the population standard deviation, 0 with no samples
func (e *Estimator) StdDev() float64 {
	v := e.Variance()
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Reset discards all samples
func (e *Estimator) Reset() {
	*e = Estimator{}
}
