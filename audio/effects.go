package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/cadet/input"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	flipperDuration = 40 * time.Millisecond
	plungerDuration = 120 * time.Millisecond
	bumpDuration    = 60 * time.Millisecond
	clickAttack     = 2 * time.Millisecond
	clickRelease    = 25 * time.Millisecond
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with attack/release ramps; output ends after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume silences it
// math.Log2(0) is -Inf, hence the Silent path
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ClickSound builds the one-shot feedback tone for an action press
// Returns nil for actions without a sound
func ClickSound(a input.Action, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch a {
	case input.LeftFlipper:
		s = flipperClick(rate, 220)
	case input.RightFlipper:
		s = flipperClick(rate, 247)
	case input.Plunger:
		s = plungerThump(rate)
	case input.LeftBump, input.RightBump, input.BottomBump:
		osc := NewOscillator(0, bumpDuration, WaveNoise, rate)
		s = NewEnvelope(osc, bumpDuration, clickAttack, clickRelease, rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}

func flipperClick(rate beep.SampleRate, freq float64) beep.Streamer {
	body := NewEnvelope(NewOscillator(freq, flipperDuration, WaveSquare, rate), flipperDuration, clickAttack, clickRelease, rate)
	edge := NewEnvelope(NewOscillator(freq*4, flipperDuration/2, WaveSaw, rate), flipperDuration/2, 0, clickRelease/2, rate)
	return beep.Mix(newVolume(body, 0.7), newVolume(edge, 0.3))
}

// plungerThump is a low sine; generators.SineTone only fails on a frequency above Nyquist
func plungerThump(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, 110)
	if err != nil {
		sine = NewOscillator(110, plungerDuration, WaveSine, rate)
	}
	n := rate.N(plungerDuration)
	return NewEnvelope(beep.Take(n, sine), plungerDuration, clickAttack, plungerDuration/2, rate)
}
