package pacing

import "time"

// Mode selects how a wait is realized
type Mode uint8

const (
	ModeBlocking Mode = iota // One blocking sleep, no estimator
	ModeHybrid               // Unit sleeps above the spin threshold, busy-wait below
)

const (
	defaultStdDevFactor = 0.5
	defaultSleepUnit    = time.Millisecond
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeHybrid:
		return "hybrid"
	default:
		return "blocking"
	}
}

type (
	Option = func(*Pacer)

	// Pacer turns a requested wait into sleep and spin
	// Not safe for concurrent use; owned by the loop goroutine
	Pacer struct {
		clock        Clock
		mode         Mode
		stdDevFactor float64
		sleepUnit    time.Duration

		estimator     Estimator
		spinThreshold time.Duration
	}
)

// WithClock replaces the real clock
func WithClock(c Clock) Option {
	return func(p *Pacer) {
		p.clock = c
	}
}

// WithMode sets the initial mode
func WithMode(m Mode) Option {
	return func(p *Pacer) {
		p.mode = m
	}
}

// WithStdDevFactor sets k in threshold = mean + k*stddev
func WithStdDevFactor(k float64) Option {
	return func(p *Pacer) {
		if k >= 0 {
			p.stdDevFactor = k
		}
	}
}

// WithSleepUnit sets the minimal blocking sleep used in hybrid mode
func WithSleepUnit(d time.Duration) Option {
	return func(p *Pacer) {
		if d > 0 {
			p.sleepUnit = d
		}
	}
}

// NewPacer creates a pacer in blocking mode unless overridden
func NewPacer(options ...Option) *Pacer {
	p := &Pacer{
		clock:        NewMonotonicClock(),
		mode:         ModeBlocking,
		stdDevFactor: defaultStdDevFactor,
		sleepUnit:    defaultSleepUnit,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Mode returns the active mode
func (p *Pacer) Mode() Mode {
	return p.mode
}

// SetMode switches the mode, discarding the estimate if it changed
// Statistics of one sleep strategy are not evidence for another
func (p *Pacer) SetMode(m Mode) {
	if m == p.mode {
		return
	}
	p.mode = m
	p.Reset()
}

// Reset discards the estimate; the next hybrid wait recalibrates with unit sleeps
func (p *Pacer) Reset() {
	p.estimator.Reset()
	p.spinThreshold = 0
}

// SpinThreshold returns the current busy-wait threshold
func (p *Pacer) SpinThreshold() time.Duration {
	return p.spinThreshold
}

// Stats returns a copy of the estimator state
func (p *Pacer) Stats() Estimator {
	return p.estimator
}

// Wait blocks for at least d on the pacer's clock
// Non-positive durations return immediately
func (p *Pacer) Wait(d time.Duration) {
	if d <= 0 {
		return
	}

	if p.mode == ModeBlocking {
		p.clock.Sleep(d)
		return
	}

	p.hybridWait(d)
}

func (p *Pacer) hybridWait(remaining time.Duration) {
	for remaining > p.spinThreshold {
		start := p.clock.Now()
		p.clock.Sleep(p.sleepUnit)
		elapsed := p.clock.Now().Sub(start)
		remaining -= elapsed

		p.estimator.Advance(durationMs(elapsed))
		threshold := p.estimator.Mean + p.estimator.StdDev()*p.stdDevFactor
		p.spinThreshold = msDuration(threshold)
	}

	// Busy-wait tail
	for start := p.clock.Now(); p.clock.Now().Sub(start) < remaining; {
	}
}

// durationMs converts a duration to floating-point milliseconds
func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// msDuration converts floating-point milliseconds to a duration
func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// Milliseconds converts a duration to floating-point milliseconds
func Milliseconds(d time.Duration) float64 {
	return durationMs(d)
}
