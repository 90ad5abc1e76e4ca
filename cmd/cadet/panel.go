package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/engine"
	"github.com/lixenwraith/cadet/input"
	"github.com/lixenwraith/cadet/settings"
	"github.com/lixenwraith/cadet/status"
)

const (
	fpsStep      = 10
	captureLabel = "Press the key"
)

// Control is the loop surface the panel drives
type Control interface {
	TogglePause()
	Paused() bool
	Quit()
}

// Panel handles application hotkeys and the controls dialog, and renders the status text
// Runs on the loop goroutine only
type Panel struct {
	cfg      *config.Config
	bindings *input.BindingTable
	reg      *status.Registry
	table    *Table
	backend  string

	ctl        Control
	generation int

	dialog  bool
	metrics bool
	row     input.Action
	slot    int
	saved   *settings.Memory
	ctrl    int // held Ctrl keys
}

// NewPanel creates a panel; Attach must be called for each session
func NewPanel(cfg *config.Config, bindings *input.BindingTable, reg *status.Registry, table *Table, backend string) *Panel {
	return &Panel{
		cfg:      cfg,
		bindings: bindings,
		reg:      reg,
		table:    table,
		backend:  backend,
	}
}

// Attach binds the panel to the loop of a new session
func (p *Panel) Attach(ctl Control, generation int) {
	p.ctl = ctl
	p.generation = generation
	p.ctrl = 0
}

// DialogOpen reports whether the controls dialog is shown
func (p *Panel) DialogOpen() bool {
	return p.dialog
}

// Selection returns the highlighted dialog slot
func (p *Panel) Selection() (input.Action, int) {
	return p.row, p.slot
}

// HandleEvent implements engine.EventHandler
func (p *Panel) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventKeyDown:
		k := input.Key(e.Code)
		if k == input.KeyLeftCtrl || k == input.KeyRightCtrl {
			p.ctrl++
			return
		}
		if e.Repeat {
			return
		}
		p.key(k)
	case input.EventKeyUp:
		k := input.Key(e.Code)
		if (k == input.KeyLeftCtrl || k == input.KeyRightCtrl) && p.ctrl > 0 {
			p.ctrl--
		}
	case input.EventControllerDown:
		if input.ControllerButton(e.Code) == input.ControllerStart && !p.bindings.Capturing() {
			p.togglePause()
		}
	case input.EventFocusLost:
		p.ctrl = 0
	}
}

func (p *Panel) key(k input.Key) {
	if p.ctrl > 0 && k == input.Key('c') {
		p.quit()
		return
	}

	switch k {
	case input.KeyF3:
		p.togglePause()
		return
	case input.KeyF4:
		p.cfg.SetFullScreen(!p.cfg.FullScreen())
		return
	case input.KeyF6:
		p.cfg.SetHybridSleep(!p.cfg.HybridSleep())
		return
	case input.KeyF7:
		p.cfg.SetUncappedUpdatesPerSecond(!p.cfg.UncappedUpdatesPerSecond())
		return
	case input.KeyF8:
		if p.bindings.Capturing() {
			p.bindings.CancelCapture()
		} else if p.dialog {
			p.closeDialog()
		} else {
			p.openDialog()
		}
		return
	case input.KeyF9:
		if p.dialog {
			p.cancelDialog()
		}
		return
	case input.KeyF10:
		p.metrics = !p.metrics
		return
	case input.KeyF11:
		p.cfg.SetLanguage(p.cfg.NextLanguage())
		return
	case input.KeyF12:
		log.Printf("panel: restoring default settings")
		p.cfg.ResetAll()
		return
	}

	if p.dialog {
		p.dialogKey(k)
		return
	}

	switch k {
	case input.Key('+'), input.Key('='):
		p.cfg.SetFramesPerSecond(p.cfg.FramesPerSecond() + fpsStep)
	case input.Key('-'):
		p.cfg.SetFramesPerSecond(p.cfg.FramesPerSecond() - fpsStep)
	}
}

// dialogKey navigates the dialog; capture consumes keys before they get here
func (p *Panel) dialogKey(k input.Key) {
	if p.bindings.Capturing() {
		return
	}
	switch k {
	case input.KeyUp:
		p.row = (p.row + input.ActionCount - 1) % input.ActionCount
	case input.KeyDown:
		p.row = (p.row + 1) % input.ActionCount
	case input.KeyLeft:
		p.slot = (p.slot + input.SlotsPerRow - 1) % input.SlotsPerRow
	case input.KeyRight:
		p.slot = (p.slot + 1) % input.SlotsPerRow
	case input.KeyReturn:
		p.bindings.BeginCapture(p.row, p.slot)
	case input.KeyBackspace, input.KeyDelete:
		p.bindings.Clear(p.row)
	case input.KeyF5:
		p.bindings.ResetAll()
	case input.KeyEscape:
		p.closeDialog()
	}
}

func (p *Panel) openDialog() {
	p.saved = settings.NewMemory()
	p.bindings.Save(p.saved)
	p.dialog = true
	p.row, p.slot = input.LeftFlipper, 0
}

func (p *Panel) closeDialog() {
	p.bindings.CancelCapture()
	p.dialog = false
	p.saved = nil
}

// cancelDialog restores the bindings as they were when the dialog opened
func (p *Panel) cancelDialog() {
	if p.saved != nil {
		p.bindings.Load(p.saved)
	}
	p.closeDialog()
}

func (p *Panel) togglePause() {
	if p.ctl != nil {
		p.ctl.TogglePause()
	}
}

func (p *Panel) quit() {
	log.Printf("panel: quit requested")
	if p.ctl != nil {
		p.ctl.Quit()
	}
}

// Lines implements the presenters' line source
func (p *Panel) Lines() []string {
	lines := make([]string, 0, 16)

	state := p.reg.Strings.Get(engine.MetricState).Load()
	paused := p.ctl != nil && p.ctl.Paused()
	lines = append(lines,
		fmt.Sprintf("cadet [%s] session %d  state %s  paused %v  language %s",
			p.backend, p.generation, state, paused, p.cfg.Language()),
		fmt.Sprintf("UPS %d (actual %.1f)  FPS %d (actual %.1f)  ratio %.3f",
			p.cfg.UpdatesPerSecond(), p.reg.Floats.Get(engine.MetricUPS).Get(),
			p.cfg.FramesPerSecond(), p.reg.Floats.Get(engine.MetricFPS).Get(),
			p.cfg.UpdateToFrameRatio()),
		fmt.Sprintf("frame avg %.3fms  dev %.3fms  target %.3fms  spin threshold %.3fms",
			p.reg.Floats.Get(engine.MetricFrameAvg).Get(),
			p.reg.Floats.Get(engine.MetricFrameDev).Get(),
			p.reg.Floats.Get(engine.MetricFrameTarget).Get(),
			p.reg.Floats.Get(engine.MetricSpinThreshold).Get()),
		fmt.Sprintf("hybrid sleep %s  uncapped %s  fullscreen %s  sounds %s",
			onOff(p.cfg.HybridSleep()), onOff(p.cfg.UncappedUpdatesPerSecond()),
			onOff(p.cfg.FullScreen()), onOff(p.cfg.Sounds())),
		fmt.Sprintf("simulated %s in %d updates  held %s",
			p.table.Elapsed().Truncate(time.Millisecond), p.table.Updates(), heldLabel(p.table.Held())),
		"",
	)

	if p.metrics {
		for _, m := range p.reg.Snapshot() {
			lines = append(lines, fmt.Sprintf("  %-24s %s", m.Key, m.Value))
		}
		lines = append(lines, "")
	}

	if !p.dialog {
		return append(lines,
			"F3 pause  F4 fullscreen  F6 hybrid  F7 uncapped  +/- FPS  F8 controls  F10 metrics  F11 language  F12 defaults  Ctrl+C quit")
	}

	slot, capturing := p.bindings.Capture()
	for _, a := range input.Actions() {
		cells := make([]string, input.SlotsPerRow)
		for i := range cells {
			label := input.Describe(p.bindings.Binding(a, i))
			if capturing && slot.Row == a && slot.Index == i {
				label = captureLabel
			}
			if a == p.row && i == p.slot {
				label = "[" + label + "]"
			}
			cells[i] = label
		}
		marker := " "
		if a == p.row {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %-14s %s  (%d)", marker, a, strings.Join(cells, " | "), p.table.Presses(a)))
	}
	return append(lines, "",
		"arrows select  Enter capture  Backspace clear row  F5 defaults  F8 close  F9 cancel")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func heldLabel(actions []input.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
