package terminal

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/input"
)

// EventSink receives translated events; input.Queue in production
type EventSink interface {
	Push(e input.Event)
}

// Service owns the tcell screen and its input polling goroutine
type Service struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	sink      EventSink
	trans     Translator

	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a terminal service pushing events into sink
func NewService(sink EventSink) *Service {
	return NewServiceWithScreen(sink, tcell.NewScreen)
}

// NewServiceWithScreen uses newScreen to create the screen, e.g. a simulation screen in tests
func NewServiceWithScreen(sink EventSink, newScreen func() (tcell.Screen, error)) *Service {
	return &Service{
		newScreen: newScreen,
		sink:      sink,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Service) Init(*config.Config) error {
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
	s.screen = screen
	return nil
}

// Start implements service.Service - launches input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
	return nil
}

// pollLoop reads screen events until stop signal
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			if s.screen != nil {
				s.screen.Fini()
			}
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}
		if f, ok := ev.(*tcell.EventFocus); ok && !f.Focused {
			for _, e := range s.trans.ReleaseAll() {
				s.sink.Push(e)
			}
		}
		for _, e := range s.trans.Translate(ev) {
			s.sink.Push(e)
		}
	}
}

// Stop implements service.Service - signals stop and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		if s.screen != nil {
			s.screen.Fini()
			s.screen = nil
		}
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Synthetic event unblocks PollEvent
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		log.Printf("terminal: post interrupt: %v", err)
	}
	<-s.doneCh

	s.screen.Fini()
	s.screen = nil
	return nil
}

// Screen returns the active screen, nil before Init or after Stop
func (s *Service) Screen() tcell.Screen {
	return s.screen
}
