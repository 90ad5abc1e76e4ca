package input

import "strings"

// Key is a keyboard key code
// Printable keys use their lowercase ASCII value, other keys are scancode|ScancodeMask
type Key int32

// ScancodeMask marks key codes derived from a scancode
const ScancodeMask = 1 << 30

// Key constants
const (
	KeyUnknown   Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyReturn    Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = ' '
	KeyDelete    Key = 127

	KeyCapsLock    Key = 57 | ScancodeMask
	KeyF1          Key = 58 | ScancodeMask
	KeyF2          Key = 59 | ScancodeMask
	KeyF3          Key = 60 | ScancodeMask
	KeyF4          Key = 61 | ScancodeMask
	KeyF5          Key = 62 | ScancodeMask
	KeyF6          Key = 63 | ScancodeMask
	KeyF7          Key = 64 | ScancodeMask
	KeyF8          Key = 65 | ScancodeMask
	KeyF9          Key = 66 | ScancodeMask
	KeyF10         Key = 67 | ScancodeMask
	KeyF11         Key = 68 | ScancodeMask
	KeyF12         Key = 69 | ScancodeMask
	KeyPrintScreen Key = 70 | ScancodeMask
	KeyScrollLock  Key = 71 | ScancodeMask
	KeyPause       Key = 72 | ScancodeMask
	KeyInsert      Key = 73 | ScancodeMask
	KeyHome        Key = 74 | ScancodeMask
	KeyPageUp      Key = 75 | ScancodeMask
	KeyEnd         Key = 77 | ScancodeMask
	KeyPageDown    Key = 78 | ScancodeMask
	KeyRight       Key = 79 | ScancodeMask
	KeyLeft        Key = 80 | ScancodeMask
	KeyDown        Key = 81 | ScancodeMask
	KeyUp          Key = 82 | ScancodeMask

	KeyLeftCtrl   Key = 224 | ScancodeMask
	KeyLeftShift  Key = 225 | ScancodeMask
	KeyLeftAlt    Key = 226 | ScancodeMask
	KeyLeftGUI    Key = 227 | ScancodeMask
	KeyRightCtrl  Key = 228 | ScancodeMask
	KeyRightShift Key = 229 | ScancodeMask
	KeyRightAlt   Key = 230 | ScancodeMask
	KeyRightGUI   Key = 231 | ScancodeMask
)

// keyToName maps non-printable keys to display names
var keyToName = map[Key]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyDelete:    "Delete",

	KeyCapsLock:    "CapsLock",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",
	KeyRight:       "Right",
	KeyLeft:        "Left",
	KeyDown:        "Down",
	KeyUp:          "Up",

	KeyLeftCtrl:   "Left Ctrl",
	KeyLeftShift:  "Left Shift",
	KeyLeftAlt:    "Left Alt",
	KeyLeftGUI:    "Left GUI",
	KeyRightCtrl:  "Right Ctrl",
	KeyRightShift: "Right Shift",
	KeyRightAlt:   "Right Alt",
	KeyRightGUI:   "Right GUI",
}

// IsFunctionKey reports whether k is F1..F12
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsPrintable reports whether k is a printable ASCII key
func (k Key) IsPrintable() bool {
	return k > ' ' && k < KeyDelete
}

// KeyName returns the display name for k, empty if unknown
// Letters are shown uppercase
func KeyName(k Key) string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k.IsPrintable() {
		return strings.ToUpper(string(rune(k)))
	}
	return ""
}

// KeyFromRune maps a typed character to its key code
func KeyFromRune(r rune) (Key, bool) {
	k := Key(r)
	if k >= 'A' && k <= 'Z' {
		k += 'a' - 'A'
	}
	if k == KeySpace || k.IsPrintable() {
		return k, true
	}
	return KeyUnknown, false
}
