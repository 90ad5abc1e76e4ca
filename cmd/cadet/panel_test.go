package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/engine"
	"github.com/lixenwraith/cadet/input"
	"github.com/lixenwraith/cadet/status"
)

type fakeControl struct {
	paused bool
	quits  int
}

func (f *fakeControl) TogglePause() { f.paused = !f.paused }
func (f *fakeControl) Paused() bool { return f.paused }
func (f *fakeControl) Quit()        { f.quits++ }

func newTestPanel(t *testing.T) (*Panel, *fakeControl, *config.Config, *input.BindingTable) {
	t.Helper()
	cfg := config.New()
	bindings := input.NewBindingTable(cfg)
	p := NewPanel(cfg, bindings, status.NewRegistry(), NewTable(), "test")
	ctl := &fakeControl{}
	p.Attach(ctl, 0)
	return p, ctl, cfg, bindings
}

func press(p *Panel, k input.Key) {
	p.HandleEvent(input.KeyPress(k))
	p.HandleEvent(input.KeyRelease(k))
}

func TestPanel_Hotkeys(t *testing.T) {
	p, ctl, cfg, _ := newTestPanel(t)

	press(p, input.KeyF3)
	assert.True(t, ctl.paused)

	hybrid := cfg.HybridSleep()
	press(p, input.KeyF6)
	assert.Equal(t, !hybrid, cfg.HybridSleep())

	press(p, input.KeyF7)
	assert.True(t, cfg.UncappedUpdatesPerSecond())

	fps := cfg.FramesPerSecond()
	press(p, input.Key('='))
	assert.Equal(t, fps+fpsStep, cfg.FramesPerSecond())
	press(p, input.Key('-'))
	assert.Equal(t, fps, cfg.FramesPerSecond())

	lang := cfg.Language()
	press(p, input.KeyF11)
	assert.NotEqual(t, lang, cfg.Language())

	p.HandleEvent(input.Event{Type: input.EventControllerDown, Code: int(input.ControllerStart)})
	assert.False(t, ctl.paused)
}

func TestPanel_CtrlCQuits(t *testing.T) {
	p, ctl, _, _ := newTestPanel(t)

	press(p, input.Key('c'))
	assert.Zero(t, ctl.quits)

	p.HandleEvent(input.KeyPress(input.KeyLeftCtrl))
	press(p, input.Key('c'))
	p.HandleEvent(input.KeyRelease(input.KeyLeftCtrl))
	assert.Equal(t, 1, ctl.quits)

	press(p, input.Key('c'))
	assert.Equal(t, 1, ctl.quits, "ctrl released")
}

func TestPanel_DialogNavigationAndCapture(t *testing.T) {
	p, _, _, bindings := newTestPanel(t)

	press(p, input.KeyF8)
	require.True(t, p.DialogOpen())

	press(p, input.KeyDown)
	press(p, input.KeyRight)
	row, slot := p.Selection()
	assert.Equal(t, input.RightFlipper, row)
	assert.Equal(t, 1, slot)

	press(p, input.KeyUp)
	press(p, input.KeyUp)
	row, _ = p.Selection()
	assert.Equal(t, input.BottomBump, row, "selection wraps")

	press(p, input.KeyReturn)
	s, ok := bindings.Capture()
	require.True(t, ok)
	assert.Equal(t, input.Slot{Row: input.BottomBump, Index: 1}, s)
	assert.Contains(t, strings.Join(p.Lines(), "\n"), captureLabel)

	// F8 cancels the capture first, then closes the dialog
	press(p, input.KeyF8)
	assert.False(t, bindings.Capturing())
	assert.True(t, p.DialogOpen())
	press(p, input.KeyF8)
	assert.False(t, p.DialogOpen())
}

func TestPanel_CancelRestoresBindings(t *testing.T) {
	p, _, _, bindings := newTestPanel(t)
	before := bindings.Row(input.LeftFlipper)

	press(p, input.KeyF8)
	press(p, input.KeyBackspace)
	assert.Equal(t, input.Unbound, bindings.Binding(input.LeftFlipper, 0))

	press(p, input.KeyF9)
	assert.False(t, p.DialogOpen())
	assert.Equal(t, before, bindings.Row(input.LeftFlipper))
}

func TestPanel_CloseKeepsChanges(t *testing.T) {
	p, _, _, bindings := newTestPanel(t)

	press(p, input.KeyF8)
	press(p, input.KeyBackspace)
	press(p, input.KeyF8)
	assert.Equal(t, input.Unbound, bindings.Binding(input.LeftFlipper, 0))

	press(p, input.KeyF8)
	press(p, input.KeyF5)
	press(p, input.KeyEscape)
	assert.Equal(t, input.DefaultRow(input.LeftFlipper), bindings.Row(input.LeftFlipper))
}

func TestPanel_Lines(t *testing.T) {
	p, _, _, _ := newTestPanel(t)
	text := strings.Join(p.Lines(), "\n")
	assert.Contains(t, text, "UPS 120")
	assert.Contains(t, text, "F8 controls")

	press(p, input.KeyF8)
	lines := p.Lines()
	text = strings.Join(lines, "\n")
	assert.Contains(t, text, "[Keyboard Z]")
	assert.Contains(t, text, "Mouse Left")

	highlighted := 0
	for _, l := range lines {
		if strings.HasPrefix(l, ">") {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestPanel_MetricsView(t *testing.T) {
	p, _, _, _ := newTestPanel(t)
	p.reg.Ints.Get(engine.MetricUpdates).Store(42)

	assert.NotContains(t, strings.Join(p.Lines(), "\n"), engine.MetricUpdates)

	press(p, input.KeyF10)
	var found bool
	for _, l := range p.Lines() {
		if strings.Contains(l, engine.MetricUpdates) {
			found = true
			assert.True(t, strings.HasSuffix(l, " 42"), l)
		}
	}
	assert.True(t, found)

	press(p, input.KeyF10)
	assert.NotContains(t, strings.Join(p.Lines(), "\n"), engine.MetricUpdates)
}

func TestPanel_RestoreDefaults(t *testing.T) {
	p, _, cfg, bindings := newTestPanel(t)

	var changes []config.Change
	cfg.Watch(func(ch config.Change) { changes = append(changes, ch) })

	press(p, input.KeyF6)
	press(p, input.Key('='))
	require.NoError(t, bindings.Set(input.Plunger, 0, input.KeyInput('p')))
	changes = nil

	press(p, input.KeyF12)
	assert.Equal(t, config.DefaultFramesPerSecond, cfg.FramesPerSecond())
	assert.False(t, cfg.HybridSleep())
	assert.Equal(t, input.DefaultRow(input.Plunger), bindings.Row(input.Plunger))
	assert.Contains(t, changes, config.Change{Field: config.FieldHybridSleep})
	assert.Contains(t, changes, config.Change{Field: config.FieldFramesPerSecond})
}
