package engine

// Accumulator gates renders so that one frame is presented per UPS/FPS simulation steps
// The fractional remainder carries into the next frame
type Accumulator struct {
	ratio   float64
	counter float64
}

// NewAccumulator creates an accumulator with the given update-to-frame ratio
func NewAccumulator(ratio float64) *Accumulator {
	a := &Accumulator{}
	a.SetRatio(ratio)
	return a
}

// SetRatio changes the ratio; non-positive ratios render every step
func (a *Accumulator) SetRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	a.ratio = ratio
}

// Ratio returns the update-to-frame ratio
func (a *Accumulator) Ratio() float64 {
	return a.ratio
}

// Counter returns the accumulated steps
func (a *Accumulator) Counter() float64 {
	return a.counter
}

// Step records one loop iteration
func (a *Accumulator) Step() {
	a.counter++
}

// RenderDue reports whether a frame should be presented, consuming one ratio if so
func (a *Accumulator) RenderDue() bool {
	if a.counter >= a.ratio {
		a.counter -= a.ratio
		return true
	}
	return false
}

// Reset clears the accumulated steps
func (a *Accumulator) Reset() {
	a.counter = 0
}
