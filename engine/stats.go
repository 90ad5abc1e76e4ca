package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cadet/status"
)

const (
	rateWindow     = time.Second
	historySeconds = 5.0
)

// Metric keys published by the loop
const (
	MetricUPS           = "loop.ups"
	MetricFPS           = "loop.fps"
	MetricFrameAvg      = "loop.frame_avg_ms"
	MetricFrameDev      = "loop.frame_dev_ms"
	MetricFrameTarget   = "loop.frame_target_ms"
	MetricSpinThreshold = "loop.spin_threshold_ms"
	MetricUpdates       = "loop.updates"
	MetricFrames        = "loop.frames"
	MetricState         = "loop.state"
	MetricPaused        = "loop.paused"
	MetricHybrid        = "loop.hybrid"
	MetricUncapped      = "loop.uncapped"
)

// Stats measures achieved rates and frame-duration spread
// Written by the loop goroutine only; readers go through the status registry
type Stats struct {
	windowStart time.Time
	updates     int
	frames      int

	// Ring of recent simulation step durations in ms
	history []float64
	offset  int
	target  float64

	// Cached metric pointers
	statUPS      *status.AtomicFloat
	statFPS      *status.AtomicFloat
	statAvg      *status.AtomicFloat
	statDev      *status.AtomicFloat
	statTarget   *status.AtomicFloat
	statSpin     *status.AtomicFloat
	statUpdates  *atomic.Int64
	statFrames   *atomic.Int64
	statState    *status.AtomicString
	statPaused   *atomic.Bool
	statHybrid   *atomic.Bool
	statUncapped *atomic.Bool
}

// NewStats creates stats publishing into reg
func NewStats(reg *status.Registry) *Stats {
	return &Stats{
		statUPS:      reg.Floats.Get(MetricUPS),
		statFPS:      reg.Floats.Get(MetricFPS),
		statAvg:      reg.Floats.Get(MetricFrameAvg),
		statDev:      reg.Floats.Get(MetricFrameDev),
		statTarget:   reg.Floats.Get(MetricFrameTarget),
		statSpin:     reg.Floats.Get(MetricSpinThreshold),
		statUpdates:  reg.Ints.Get(MetricUpdates),
		statFrames:   reg.Ints.Get(MetricFrames),
		statState:    reg.Strings.Get(MetricState),
		statPaused:   reg.Bools.Get(MetricPaused),
		statHybrid:   reg.Bools.Get(MetricHybrid),
		statUncapped: reg.Bools.Get(MetricUncapped),
	}
}

// Start opens the first rate window
func (s *Stats) Start(now time.Time) {
	s.windowStart = now
	s.updates = 0
	s.frames = 0
}

// Resize sizes the history to historySeconds of steps at ups, filled with the target
func (s *Stats) Resize(ups int, target time.Duration) {
	s.target = durationMs(target)
	s.statTarget.Set(s.target)

	size := int(float64(ups) * historySeconds)
	if size < 1 {
		size = 1
	}
	s.history = make([]float64, size)
	for i := range s.history {
		s.history[i] = s.target
	}
	s.offset = 0
	s.publishFrameTimes()
}

// Update records one simulation step of dtMs
func (s *Stats) Update(dtMs float64) {
	s.updates++
	s.statUpdates.Add(1)
	if len(s.history) > 0 {
		s.history[s.offset] = dtMs
		s.offset = (s.offset + 1) % len(s.history)
	}
}

// Frame records one presented frame
func (s *Stats) Frame() {
	s.frames++
	s.statFrames.Add(1)
}

// Tick publishes rates once per window
func (s *Stats) Tick(now time.Time) {
	elapsed := now.Sub(s.windowStart)
	if elapsed <= rateWindow {
		return
	}
	sec := elapsed.Seconds()
	s.statUPS.Set(float64(s.updates) / sec)
	s.statFPS.Set(float64(s.frames) / sec)
	s.publishFrameTimes()

	s.updates = 0
	s.frames = 0
	s.windowStart = now
}

// FrameTimes returns the average step duration and its mean absolute deviation from the target
func (s *Stats) FrameTimes() (avg, dev float64) {
	if len(s.history) == 0 {
		return 0, 0
	}
	for _, v := range s.history {
		avg += v
		dev += math.Abs(s.target - v)
	}
	n := float64(len(s.history))
	return avg / n, dev / n
}

// SetSpinThreshold publishes the pacer threshold
func (s *Stats) SetSpinThreshold(d time.Duration) {
	s.statSpin.Set(durationMs(d))
}

// SetState publishes the loop state and flags
func (s *Stats) SetState(state State, paused, hybrid, uncapped bool) {
	s.statState.Store(state.String())
	s.statPaused.Store(paused)
	s.statHybrid.Store(hybrid)
	s.statUncapped.Store(uncapped)
}

func (s *Stats) publishFrameTimes() {
	avg, dev := s.FrameTimes()
	s.statAvg.Set(avg)
	s.statDev.Set(dev)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
