package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/input"
	"github.com/lixenwraith/cadet/pacing"
	"github.com/lixenwraith/cadet/status"
)

// State is the coarse loop state driven by focus
type State uint8

const (
	StateActive State = iota // Focused: drain events, simulate, render, pace
	StateIdle                // Unfocused: block on events with a growing timeout
)

// String returns the state name
func (s State) String() string {
	if s == StateIdle {
		return "idle"
	}
	return "active"
}

// Simulation consumes resolved actions and fixed steps
type Simulation interface {
	Update(dtMs float64)
	ActionDown(a input.Action)
	ActionUp(a input.Action)
	LoseFocus()
}

// Renderer presents one frame
type Renderer interface {
	Render()
}

// EventHandler observes raw events after binding dispatch
type EventHandler interface {
	HandleEvent(e input.Event)
}

// FocusListener follows focus transitions
type FocusListener interface {
	Activate()
	Deactivate()
}

// EventSource delivers raw events to the loop goroutine
type EventSource interface {
	Poll() (input.Event, bool)
	Wait(timeout time.Duration) (input.Event, bool)
	Push(e input.Event)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func()

// Render calls f
func (f RendererFunc) Render() { f() }

type nopRenderer struct{}

func (nopRenderer) Render() {}

// Loop is the main loop driver
// Everything except Restart and Quit must be called from the goroutine running Run
type Loop struct {
	cfg      *config.Config
	bindings *input.BindingTable
	events   EventSource
	sim      Simulation

	renderer  Renderer
	handlers  []EventHandler
	listeners []FocusListener
	clock     pacing.Clock
	pacer     *pacing.Pacer
	registry  *status.Registry

	acc   *Accumulator
	idle  *IdleTimer
	stats *Stats

	state      State
	quit       bool
	restart    atomic.Bool
	paused     bool
	noTimeLoss bool

	targetFrameTime time.Duration
	frameStart      time.Time
	frameDuration   time.Duration
	sleepRemainder  time.Duration

	unwatch func()
}

// LoopOption configures a Loop
type LoopOption = func(*Loop)

// WithClock replaces the real clock for both the loop and its pacer
func WithClock(c pacing.Clock) LoopOption {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithRenderer sets the frame presenter
func WithRenderer(r Renderer) LoopOption {
	return func(l *Loop) {
		l.renderer = r
	}
}

// WithEventHandler appends a raw event observer
func WithEventHandler(h EventHandler) LoopOption {
	return func(l *Loop) {
		l.handlers = append(l.handlers, h)
	}
}

// WithFocusListener appends a focus observer
func WithFocusListener(f FocusListener) LoopOption {
	return func(l *Loop) {
		l.listeners = append(l.listeners, f)
	}
}

// WithStatus publishes loop metrics into reg
func WithStatus(reg *status.Registry) LoopOption {
	return func(l *Loop) {
		l.registry = reg
	}
}

// WithInitialState sets the state before the first focus event
func WithInitialState(s State) LoopOption {
	return func(l *Loop) {
		l.state = s
	}
}

// NewLoop wires a loop over its collaborators
func NewLoop(cfg *config.Config, bindings *input.BindingTable, events EventSource, sim Simulation, options ...LoopOption) *Loop {
	l := &Loop{
		cfg:      cfg,
		bindings: bindings,
		events:   events,
		sim:      sim,
		renderer: nopRenderer{},
		clock:    pacing.NewMonotonicClock(),
		state:    StateActive,
	}

	for _, opt := range options {
		opt(l)
	}

	if l.registry == nil {
		l.registry = status.NewRegistry()
	}

	l.pacer = pacing.NewPacer(pacing.WithClock(l.clock), pacing.WithMode(pacerMode(cfg)))
	l.acc = NewAccumulator(cfg.UpdateToFrameRatio())
	l.idle = NewIdleTimer(cfg.TargetFrameTime())
	l.stats = NewStats(l.registry)
	l.updateFrameRate()

	return l
}

// Registry returns the registry receiving loop metrics
func (l *Loop) Registry() *status.Registry { return l.registry }

// Pacer returns the loop's pacer
func (l *Loop) Pacer() *pacing.Pacer { return l.pacer }

// Stats returns the loop's statistics
func (l *Loop) Stats() *Stats { return l.stats }

// State returns the current focus state
func (l *Loop) State() State { return l.state }

// Paused reports whether simulation steps are suspended
func (l *Loop) Paused() bool { return l.paused }

// RestartRequested reports whether the session should be rebuilt after Run returns
func (l *Loop) RestartRequested() bool { return l.restart.Load() }

// Restart requests a session rebuild; the loop exits at the next iteration
func (l *Loop) Restart() {
	l.restart.Store(true)
	l.events.Push(input.Event{Type: input.EventQuit})
}

// Quit requests loop exit
func (l *Loop) Quit() {
	l.events.Push(input.Event{Type: input.EventQuit})
}

// TogglePause suspends or resumes simulation steps
// Resuming does not charge the paused time to the simulation
func (l *Loop) TogglePause() {
	l.paused = !l.paused
	l.noTimeLoss = true
	log.Printf("loop: paused=%v", l.paused)
	l.publishState()
}

// Run drives the loop until a quit event or ctx cancellation
// Returns ctx.Err() when cancelled, nil on quit
func (l *Loop) Run(ctx context.Context) error {
	l.unwatch = l.cfg.Watch(l.onConfigChange)
	defer l.unwatch()

	l.quit = false
	l.frameStart = l.clock.Now()
	l.stats.Start(l.frameStart)
	l.publishState()
	log.Printf("loop: start state=%s ups=%d fps=%d hybrid=%v",
		l.state, l.cfg.UpdatesPerSecond(), l.cfg.FramesPerSecond(), l.cfg.HybridSleep())

	for {
		if err := ctx.Err(); err != nil {
			log.Printf("loop: cancelled: %v", err)
			return err
		}

		l.stats.Tick(l.clock.Now())

		l.processEvents()
		if l.quit {
			log.Printf("loop: quit restart=%v", l.restart.Load())
			return nil
		}

		if l.state == StateActive {
			l.iterate()
		}
	}
}

// processEvents drains pending events when active, or waits for one when idle
func (l *Loop) processEvents() {
	if l.state == StateActive {
		l.idle.Reset()
		for !l.quit {
			e, ok := l.events.Poll()
			if !ok {
				return
			}
			l.dispatch(e)
		}
		return
	}

	if e, ok := l.events.Wait(l.idle.Next()); ok {
		l.idle.Reset()
		l.dispatch(e)
	}
}

// iterate runs one active iteration: step, render gate, pace
func (l *Loop) iterate() {
	if !l.paused && !l.noTimeLoss {
		dt := durationMs(l.frameDuration)
		l.sim.Update(dt)
		l.stats.Update(dt)
	}
	l.noTimeLoss = false

	if l.acc.RenderDue() {
		l.renderer.Render()
		l.stats.Frame()
	}

	updateEnd := l.clock.Now()
	target := l.targetFrameTime - updateEnd.Sub(l.frameStart) - l.sleepRemainder

	frameEnd := updateEnd
	if target > 0 && !l.cfg.UncappedUpdatesPerSecond() {
		l.pacer.Wait(target)
		frameEnd = l.clock.Now()
	}

	l.sleepRemainder = clampDuration(frameEnd.Sub(updateEnd)-target, -l.targetFrameTime, l.targetFrameTime)
	l.frameDuration = min(frameEnd.Sub(l.frameStart), 2*l.targetFrameTime)
	l.frameStart = frameEnd
	l.acc.Step()

	l.stats.SetSpinThreshold(l.pacer.SpinThreshold())
}

// dispatch routes one raw event
func (l *Loop) dispatch(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		l.quit = true
	case input.EventFocusGained:
		l.activate()
	case input.EventFocusLost:
		l.deactivate()
	default:
		if l.dispatchInput(e) {
			return
		}
	}

	for _, h := range l.handlers {
		h.HandleEvent(e)
	}
}

// dispatchInput feeds button events to capture, then to the simulation
// Returns true if a capture consumed the event
func (l *Loop) dispatchInput(e input.Event) bool {
	in, phase, ok := e.Input()
	if !ok {
		return false
	}

	if l.bindings.Capturing() {
		if phase == input.PhaseDown && !e.Repeat && l.bindings.OnRawInput(in) {
			log.Printf("loop: captured %s", input.Describe(in))
			return true
		}
		return false
	}

	if e.Repeat || l.paused {
		return false
	}

	for _, a := range l.bindings.Resolve(in) {
		if phase == input.PhaseDown {
			l.sim.ActionDown(a)
		} else {
			l.sim.ActionUp(a)
		}
	}
	return false
}

func (l *Loop) activate() {
	if l.state != StateActive {
		log.Printf("loop: active")
	}
	l.state = StateActive
	l.noTimeLoss = true
	l.idle.Reset()
	l.frameStart = l.clock.Now()
	l.sleepRemainder = 0

	for _, f := range l.listeners {
		f.Activate()
	}
	l.publishState()
}

func (l *Loop) deactivate() {
	if l.state != StateIdle {
		log.Printf("loop: idle")
	}
	l.state = StateIdle
	l.sim.LoseFocus()

	for _, f := range l.listeners {
		f.Deactivate()
	}
	l.publishState()
}

// onConfigChange applies configuration mutations made while running
func (l *Loop) onConfigChange(ch config.Change) {
	switch ch.Field {
	case config.FieldUpdatesPerSecond, config.FieldFramesPerSecond:
		l.updateFrameRate()
		log.Printf("loop: rate ups=%d fps=%d ratio=%.3f",
			l.cfg.UpdatesPerSecond(), l.cfg.FramesPerSecond(), l.cfg.UpdateToFrameRatio())
	case config.FieldHybridSleep:
		l.pacer.SetMode(pacerMode(l.cfg))
		log.Printf("loop: pacer mode %s", l.pacer.Mode())
	case config.FieldUncappedUpdatesPerSecond:
		log.Printf("loop: uncapped=%v", l.cfg.UncappedUpdatesPerSecond())
	}

	if ch.Restart {
		log.Printf("loop: %s changed, restarting", ch.Field)
		l.Restart()
	}
	l.publishState()
}

func (l *Loop) updateFrameRate() {
	l.targetFrameTime = l.cfg.TargetFrameTime()
	l.frameDuration = l.targetFrameTime
	l.acc.SetRatio(l.cfg.UpdateToFrameRatio())
	l.idle.SetFrameTime(l.targetFrameTime)
	l.stats.Resize(l.cfg.UpdatesPerSecond(), l.targetFrameTime)
}

func (l *Loop) publishState() {
	l.stats.SetState(l.state, l.paused, l.cfg.HybridSleep(), l.cfg.UncappedUpdatesPerSecond())
}

func pacerMode(cfg *config.Config) pacing.Mode {
	if cfg.HybridSleep() {
		return pacing.ModeHybrid
	}
	return pacing.ModeBlocking
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
