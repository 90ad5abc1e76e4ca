//go:build cgo

package window

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/input"
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	// axisEpsilon suppresses stick noise
	axisEpsilon = 0.01
)

type axisKey struct {
	id   ebiten.GamepadID
	axis input.ControllerAxis
}

// Backend runs the ebiten window and translates its input
// Update, Draw and Layout run on the ebiten thread; everything else is safe from any goroutine
type Backend struct {
	sink      EventSink
	presenter *Presenter
	title     string

	done       atomic.Bool
	fullscreen atomic.Bool
	closing    bool

	focused    bool
	focusKnown bool
	width      int
	height     int

	keys     []ebiten.Key
	buttons  []ebiten.StandardGamepadButton
	gamepads []ebiten.GamepadID
	known    map[ebiten.GamepadID]bool
	axes     map[axisKey]float64
}

// NewBackend creates a window backend pushing events into sink and drawing presenter
func NewBackend(sink EventSink, presenter *Presenter, title string) *Backend {
	return &Backend{
		sink:      sink,
		presenter: presenter,
		title:     title,
		known:     make(map[ebiten.GamepadID]bool),
		axes:      make(map[axisKey]float64),
	}
}

// Name implements service.Service
func (b *Backend) Name() string {
	return "window"
}

// Dependencies implements service.Service
func (b *Backend) Dependencies() []string {
	return nil
}

// Init implements service.Service
// The window outlives sessions; each session only reapplies display settings
func (b *Backend) Init(cfg *config.Config) error {
	b.fullscreen.Store(cfg.FullScreen())
	return nil
}

// Start implements service.Service
func (b *Backend) Start() error {
	return nil
}

// Stop implements service.Service
func (b *Backend) Stop() error {
	return nil
}

// Run opens the window on the calling goroutine, which must be the main one,
// and runs loop on a new goroutine until it returns
func (b *Backend) Run(ctx context.Context, loop func(context.Context) error) error {
	ebiten.SetWindowTitle(b.title)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	errCh := make(chan error, 1)
	go func() {
		errCh <- loop(ctx)
		b.done.Store(true)
	}()

	if err := ebiten.RunGame(b); err != nil {
		// Window died first; stop the loop before reporting
		b.sink.Push(input.Event{Type: input.EventQuit})
		<-errCh
		return fmt.Errorf("window: %w", err)
	}
	return <-errCh
}

// Update implements ebiten.Game
func (b *Backend) Update() error {
	if b.done.Load() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() && !b.closing {
		b.closing = true
		b.sink.Push(input.Event{Type: input.EventQuit})
	}
	if want := b.fullscreen.Load(); ebiten.IsFullscreen() != want {
		ebiten.SetFullscreen(want)
	}

	b.pollFocus()
	b.pollKeys()
	b.pollMouse()
	b.pollGamepads()
	return nil
}

// Draw implements ebiten.Game
func (b *Backend) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, b.presenter.Text())
}

// Layout implements ebiten.Game
func (b *Backend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != b.width || outsideHeight != b.height {
		b.width, b.height = outsideWidth, outsideHeight
		b.sink.Push(input.Event{Type: input.EventResize, X: outsideWidth, Y: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

func (b *Backend) pollFocus() {
	focused := ebiten.IsFocused()
	if b.focusKnown && focused == b.focused {
		return
	}
	b.focusKnown = true
	b.focused = focused
	if focused {
		b.sink.Push(input.Event{Type: input.EventFocusGained})
	} else {
		b.sink.Push(input.Event{Type: input.EventFocusLost})
	}
}

func (b *Backend) pollKeys() {
	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		if code, ok := KeyFromEbiten(k); ok {
			b.sink.Push(input.KeyPress(code))
		}
	}
	b.keys = inpututil.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		if code, ok := KeyFromEbiten(k); ok {
			b.sink.Push(input.KeyRelease(code))
		}
	}
}

func (b *Backend) pollMouse() {
	x, y := ebiten.CursorPosition()
	for _, m := range mouseMap {
		if inpututil.IsMouseButtonJustPressed(m.button) {
			b.sink.Push(input.Event{Type: input.EventMouseDown, Code: int(m.code), X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(m.button) {
			b.sink.Push(input.Event{Type: input.EventMouseUp, Code: int(m.code), X: x, Y: y})
		}
	}
}

func (b *Backend) pollGamepads() {
	b.gamepads = inpututil.AppendJustConnectedGamepadIDs(b.gamepads[:0])
	for _, id := range b.gamepads {
		b.known[id] = true
		b.sink.Push(input.Event{Type: input.EventDeviceAdded, Device: int(id)})
	}
	for id := range b.known {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(b.known, id)
			b.sink.Push(input.Event{Type: input.EventDeviceRemoved, Device: int(id)})
		}
	}

	b.gamepads = ebiten.AppendGamepadIDs(b.gamepads[:0])
	for _, id := range b.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		b.pollButtons(id)
		b.pollAxes(id)
	}
}

func (b *Backend) pollButtons(id ebiten.GamepadID) {
	b.buttons = inpututil.AppendJustPressedStandardGamepadButtons(id, b.buttons[:0])
	for _, btn := range b.buttons {
		if code, ok := ButtonFromEbiten(btn); ok {
			b.sink.Push(input.Event{Type: input.EventControllerDown, Code: int(code), Device: int(id)})
		}
	}
	b.buttons = inpututil.AppendJustReleasedStandardGamepadButtons(id, b.buttons[:0])
	for _, btn := range b.buttons {
		if code, ok := ButtonFromEbiten(btn); ok {
			b.sink.Push(input.Event{Type: input.EventControllerUp, Code: int(code), Device: int(id)})
		}
	}
}

func (b *Backend) pollAxes(id ebiten.GamepadID) {
	for _, a := range axisMap {
		b.axis(id, a.code, ebiten.StandardGamepadAxisValue(id, a.axis))
	}
	for _, tr := range triggerMap {
		b.axis(id, tr.code, ebiten.StandardGamepadButtonValue(id, tr.button))
	}
}

func (b *Backend) axis(id ebiten.GamepadID, code input.ControllerAxis, v float64) {
	key := axisKey{id: id, axis: code}
	if math.Abs(v-b.axes[key]) < axisEpsilon {
		return
	}
	b.axes[key] = v
	b.sink.Push(input.Event{Type: input.EventControllerAxis, Axis: code, Value: v, Device: int(id)})
}
