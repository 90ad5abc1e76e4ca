package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cadet/input"
)

// specialKeys maps tcell named keys to input key codes
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyPause:      input.KeyPause,
	tcell.KeyPrint:      input.KeyPrintScreen,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// mouseButtons pairs tcell mask bits with input mouse buttons, in reporting order
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button3, input.MouseMiddle},
	{tcell.Button2, input.MouseRight},
	{tcell.Button4, input.MouseX1},
	{tcell.Button5, input.MouseX2},
}

// Translator converts tcell events to raw input events
// Holds the last mouse mask; not safe for concurrent use
type Translator struct {
	buttons tcell.ButtonMask
}

// Translate returns the input events for ev, possibly none
func (t *Translator) Translate(ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			return []input.Event{{Type: input.EventFocusGained}}
		}
		return []input.Event{{Type: input.EventFocusLost}}
	case *tcell.EventResize:
		w, h := ev.Size()
		return []input.Event{{Type: input.EventResize, X: w, Y: h}}
	}
	return nil
}

func (t *Translator) key(ev *tcell.EventKey) []input.Event {
	if ev.Key() == tcell.KeyCtrlC {
		return []input.Event{{Type: input.EventQuit}}
	}

	k, ok := KeyFromTcell(ev)
	if !ok {
		return nil
	}
	return []input.Event{input.KeyPress(k), input.KeyRelease(k)}
}

func (t *Translator) mouse(ev *tcell.EventMouse) []input.Event {
	x, y := ev.Position()
	mask := ev.Buttons()
	prev := t.buttons
	t.buttons = mask

	var out []input.Event
	for _, mb := range mouseButtons {
		was := prev&mb.mask != 0
		is := mask&mb.mask != 0
		switch {
		case is && !was:
			out = append(out, input.Event{Type: input.EventMouseDown, Code: int(mb.button), X: x, Y: y})
		case was && !is:
			out = append(out, input.Event{Type: input.EventMouseUp, Code: int(mb.button), X: x, Y: y})
		}
	}
	if len(out) == 0 {
		out = append(out, input.Event{Type: input.EventMouseMotion, X: x, Y: y})
	}
	return out
}

// ReleaseAll emits releases for every button still held, used when focus is lost
func (t *Translator) ReleaseAll() []input.Event {
	var out []input.Event
	for _, mb := range mouseButtons {
		if t.buttons&mb.mask != 0 {
			out = append(out, input.Event{Type: input.EventMouseUp, Code: int(mb.button)})
		}
	}
	t.buttons = tcell.ButtonNone
	return out
}

// KeyFromTcell maps a tcell key event to an input key code
// Control chords other than named keys are not mapped
func KeyFromTcell(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.KeyFromRune(ev.Rune())
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}
