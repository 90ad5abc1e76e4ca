package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/input"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond
	clickVolume  = 0.35
)

// Device is the output sink; the speaker package in production
type Device interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// speakerDevice routes to beep/speaker, which can only be initialized once per process
type speakerDevice struct{}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func (speakerDevice) Init(rate beep.SampleRate, bufferSize int) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(rate, bufferSize)
	})
	return speakerErr
}

func (speakerDevice) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerDevice) Clear()                  { speaker.Clear() }
func (speakerDevice) Lock()                   { speaker.Lock() }
func (speakerDevice) Unlock()                 { speaker.Unlock() }

// Service plays action feedback and follows window focus
// Handles graceful degradation when no audio backend is available
type Service struct {
	device Device
	cfg    *config.Config

	mixer *beep.Mixer
	ctrl  *beep.Ctrl

	disabled atomic.Bool
	running  atomic.Bool
}

// NewService creates an audio service writing to the system speaker
func NewService() *Service {
	return NewServiceWithDevice(speakerDevice{})
}

// NewServiceWithDevice creates an audio service writing to d
func NewServiceWithDevice(d Device) *Service {
	mixer := &beep.Mixer{}
	return &Service{
		device: d,
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Opens the output device; sets disabled flag on failure (no error returned)
func (s *Service) Init(cfg *config.Config) error {
	s.cfg = cfg
	if err := s.device.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		log.Printf("audio: disabled: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.running.Load() {
		return nil
	}
	s.device.Play(s.ctrl)
	s.running.Store(true)
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if !s.running.Swap(false) {
		return nil
	}
	s.device.Lock()
	s.ctrl.Paused = true
	s.mixer.Clear()
	s.device.Unlock()
	s.device.Clear()
	return nil
}

// Activate resumes output when the window regains focus
func (s *Service) Activate() {
	s.setPaused(false)
}

// Deactivate silences output while the window is unfocused
func (s *Service) Deactivate() {
	s.setPaused(true)
}

// Paused reports whether output is suspended
func (s *Service) Paused() bool {
	s.device.Lock()
	defer s.device.Unlock()
	return s.ctrl.Paused
}

// Enabled reports whether a device is available and sounds are switched on
func (s *Service) Enabled() bool {
	if s.disabled.Load() || !s.running.Load() {
		return false
	}
	return s.cfg == nil || s.cfg.Sounds()
}

// Click queues the feedback tone for an action press
func (s *Service) Click(a input.Action) {
	if !s.Enabled() {
		return
	}
	sound := ClickSound(a, sampleRate, clickVolume)
	if sound == nil {
		return
	}
	s.device.Lock()
	s.mixer.Add(sound)
	s.device.Unlock()
}

// Pending returns the number of streamers still mixing
func (s *Service) Pending() int {
	s.device.Lock()
	defer s.device.Unlock()
	return s.mixer.Len()
}

func (s *Service) setPaused(paused bool) {
	s.device.Lock()
	s.ctrl.Paused = paused
	s.device.Unlock()
}
