package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() *ManualClock {
	c := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c.SetSpinStep(10 * time.Microsecond)
	return c
}

func constantOvershoot(extra time.Duration) func(time.Duration) time.Duration {
	return func(time.Duration) time.Duration { return extra }
}

func TestPacer_DefaultsToBlocking(t *testing.T) {
	p := NewPacer()
	assert.Equal(t, ModeBlocking, p.Mode())
	assert.Equal(t, time.Duration(0), p.SpinThreshold())
}

func TestPacer_BlockingSingleSleep(t *testing.T) {
	clock := testClock()
	p := NewPacer(WithClock(clock))

	p.Wait(16 * time.Millisecond)

	sleeps := clock.Sleeps()
	require.Len(t, sleeps, 1)
	assert.Equal(t, 16*time.Millisecond, sleeps[0])
	assert.Equal(t, 0, p.Stats().Count, "blocking mode must not feed the estimator")
}

func TestPacer_NonPositiveWaitReturnsImmediately(t *testing.T) {
	for _, mode := range []Mode{ModeBlocking, ModeHybrid} {
		clock := testClock()
		p := NewPacer(WithClock(clock), WithMode(mode))

		before := clock.Peek()
		p.Wait(0)
		p.Wait(-5 * time.Millisecond)

		assert.Empty(t, clock.Sleeps(), mode.String())
		assert.Equal(t, before, clock.Peek(), mode.String())
	}
}

func TestPacer_HybridNeverUnderSleeps(t *testing.T) {
	clock := testClock()
	clock.SetOvershoot(constantOvershoot(200 * time.Microsecond))
	p := NewPacer(WithClock(clock), WithMode(ModeHybrid))

	for _, want := range []time.Duration{
		16 * time.Millisecond,
		8333 * time.Microsecond,
		2 * time.Millisecond,
		700 * time.Microsecond,
		16 * time.Millisecond,
	} {
		before := clock.Peek()
		p.Wait(want)
		got := clock.Peek().Sub(before)

		assert.GreaterOrEqual(t, got, want)
	}
}

func TestPacer_HybridThresholdConvergesOnStableHost(t *testing.T) {
	clock := testClock()
	clock.SetOvershoot(constantOvershoot(200 * time.Microsecond))
	p := NewPacer(WithClock(clock), WithMode(ModeHybrid))

	const want = 16 * time.Millisecond
	var overshoot time.Duration
	const rounds = 20
	for i := 0; i < rounds; i++ {
		before := clock.Peek()
		p.Wait(want)
		overshoot += clock.Peek().Sub(before) - want
	}

	// Every unit sleep on this host measures the same, so stddev is zero
	// and the threshold equals one observed sleep
	stats := p.Stats()
	assert.InDelta(t, 0, stats.StdDev(), 1e-9)
	assert.InDelta(t, stats.Mean, Milliseconds(p.SpinThreshold()), 1e-6)
	assert.Less(t, p.SpinThreshold(), 2*time.Millisecond)

	avg := overshoot / rounds
	assert.Less(t, avg, 500*time.Microsecond, "average overshoot should stay near the spin floor")
}

func TestPacer_HybridDegradesToSpinOnAdversarialHost(t *testing.T) {
	clock := testClock()
	clock.SetOvershoot(constantOvershoot(25 * time.Millisecond))
	p := NewPacer(WithClock(clock), WithMode(ModeHybrid))

	// First wait calibrates: one wildly late unit sleep
	p.Wait(16 * time.Millisecond)
	require.Len(t, clock.Sleeps(), 1)
	assert.Greater(t, p.SpinThreshold(), 16*time.Millisecond)

	// Threshold now exceeds the request, the next wait is pure spin
	before := clock.Peek()
	p.Wait(16 * time.Millisecond)
	assert.Len(t, clock.Sleeps(), 1, "no further blocking sleeps expected")
	assert.GreaterOrEqual(t, clock.Peek().Sub(before), 16*time.Millisecond)
}

func TestPacer_SetModeResetsEstimator(t *testing.T) {
	clock := testClock()
	clock.SetOvershoot(constantOvershoot(100 * time.Microsecond))
	p := NewPacer(WithClock(clock), WithMode(ModeHybrid))

	p.Wait(5 * time.Millisecond)
	require.Greater(t, p.Stats().Count, 0)
	require.Greater(t, p.SpinThreshold(), time.Duration(0))

	// Same mode keeps the estimate
	p.SetMode(ModeHybrid)
	assert.Greater(t, p.Stats().Count, 0)

	p.SetMode(ModeBlocking)
	assert.Equal(t, 0, p.Stats().Count)
	assert.Equal(t, time.Duration(0), p.SpinThreshold())

	p.SetMode(ModeHybrid)
	assert.Equal(t, 0, p.Stats().Count)
}

func TestPacer_Options(t *testing.T) {
	clock := testClock()
	p := NewPacer(
		WithClock(clock),
		WithMode(ModeHybrid),
		WithSleepUnit(2*time.Millisecond),
		WithStdDevFactor(-1), // ignored
	)

	p.Wait(3 * time.Millisecond)
	sleeps := clock.Sleeps()
	require.NotEmpty(t, sleeps)
	assert.Equal(t, 2*time.Millisecond, sleeps[0])
	assert.Equal(t, defaultStdDevFactor, p.stdDevFactor)
}

func TestMonotonicClock_SleepsAtLeastRequested(t *testing.T) {
	c := NewMonotonicClock()
	start := c.Now()
	c.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, c.Now().Sub(start), 2*time.Millisecond)

	// Non-positive sleeps are clamped
	start = c.Now()
	c.Sleep(-time.Second)
	assert.Less(t, c.Now().Sub(start), 500*time.Millisecond)
}
