package pacing

import (
	"sync"
	"time"
)

// Clock is the time source and sleep primitive used by the pacer and the loop
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock reads the monotonic wall clock and sleeps through the OS
type MonotonicClock struct{}

// NewMonotonicClock creates the real clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for at least d
func (MonotonicClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	sleep(d)
}

// ManualClock is a controllable clock for tests
// Sleep advances time by the requested duration plus Overshoot(d)
// Every Now call advances time by SpinStep, so busy-waits terminate
type ManualClock struct {
	mu        sync.Mutex
	current   time.Time
	sleeps    []time.Duration
	spinStep  time.Duration
	overshoot func(d time.Duration) time.Duration
}

// NewManualClock creates a manual clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// SetSpinStep sets the amount every Now call advances the clock
func (c *ManualClock) SetSpinStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinStep = d
}

// SetOvershoot installs the per-sleep overshoot model
func (c *ManualClock) SetOvershoot(fn func(d time.Duration) time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overshoot = fn
}

// Now returns the current mocked time
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.spinStep)
	return now
}

// Sleep advances the clock by d plus the configured overshoot
func (c *ManualClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	actual := d
	if c.overshoot != nil {
		actual += c.overshoot(d)
	}
	c.sleeps = append(c.sleeps, actual)
	c.current = c.current.Add(actual)
}

// Advance moves the clock forward without recording a sleep
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Peek returns the current time without advancing it
func (c *ManualClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleeps returns the actual durations of all sleeps so far
func (c *ManualClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}
