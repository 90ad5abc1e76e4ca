//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/cadet/input"
)

// keyMap maps ebiten physical keys to input key codes
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyReturn,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeyInsert:       input.KeyInsert,
	ebiten.KeyHome:         input.KeyHome,
	ebiten.KeyEnd:          input.KeyEnd,
	ebiten.KeyPageUp:       input.KeyPageUp,
	ebiten.KeyPageDown:     input.KeyPageDown,
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyCapsLock:     input.KeyCapsLock,
	ebiten.KeyPause:        input.KeyPause,
	ebiten.KeyPrintScreen:  input.KeyPrintScreen,
	ebiten.KeyScrollLock:   input.KeyScrollLock,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyControlLeft:  input.KeyLeftCtrl,
	ebiten.KeyControlRight: input.KeyRightCtrl,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyAltRight:     input.KeyRightAlt,
	ebiten.KeyMetaLeft:     input.KeyLeftGUI,
	ebiten.KeyMetaRight:    input.KeyRightGUI,
	ebiten.KeyMinus:        input.Key('-'),
	ebiten.KeyEqual:        input.Key('='),
	ebiten.KeyComma:        input.Key(','),
	ebiten.KeyPeriod:       input.Key('.'),
	ebiten.KeySlash:        input.Key('/'),
	ebiten.KeyBackslash:    input.Key('\\'),
	ebiten.KeySemicolon:    input.Key(';'),
	ebiten.KeyQuote:        input.Key('\''),
	ebiten.KeyBackquote:    input.Key('`'),
	ebiten.KeyBracketLeft:  input.Key('['),
	ebiten.KeyBracketRight: input.Key(']'),
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyF2:           input.KeyF2,
	ebiten.KeyF3:           input.KeyF3,
	ebiten.KeyF4:           input.KeyF4,
	ebiten.KeyF5:           input.KeyF5,
	ebiten.KeyF6:           input.KeyF6,
	ebiten.KeyF7:           input.KeyF7,
	ebiten.KeyF8:           input.KeyF8,
	ebiten.KeyF9:           input.KeyF9,
	ebiten.KeyF10:          input.KeyF10,
	ebiten.KeyF11:          input.KeyF11,
	ebiten.KeyF12:          input.KeyF12,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keyMap[k] = input.Key('a' + i)
	}

	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		keyMap[k] = input.Key('0' + i)
	}
}

// KeyFromEbiten maps an ebiten key to an input key code
func KeyFromEbiten(k ebiten.Key) (input.Key, bool) {
	code, ok := keyMap[k]
	return code, ok
}

// mouseMap pairs ebiten mouse buttons with input mouse buttons
var mouseMap = []struct {
	button ebiten.MouseButton
	code   input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButton3, input.MouseX1},
	{ebiten.MouseButton4, input.MouseX2},
}

// buttonMap maps standard-layout gamepad buttons; triggers are reported as axes
var buttonMap = map[ebiten.StandardGamepadButton]input.ControllerButton{
	ebiten.StandardGamepadButtonRightBottom:   input.ControllerA,
	ebiten.StandardGamepadButtonRightRight:    input.ControllerB,
	ebiten.StandardGamepadButtonRightLeft:     input.ControllerX,
	ebiten.StandardGamepadButtonRightTop:      input.ControllerY,
	ebiten.StandardGamepadButtonFrontTopLeft:  input.ControllerLeftShoulder,
	ebiten.StandardGamepadButtonFrontTopRight: input.ControllerRightShoulder,
	ebiten.StandardGamepadButtonCenterLeft:    input.ControllerBack,
	ebiten.StandardGamepadButtonCenterRight:   input.ControllerStart,
	ebiten.StandardGamepadButtonCenterCenter:  input.ControllerGuide,
	ebiten.StandardGamepadButtonLeftStick:     input.ControllerLeftStick,
	ebiten.StandardGamepadButtonRightStick:    input.ControllerRightStick,
	ebiten.StandardGamepadButtonLeftTop:       input.ControllerDpUp,
	ebiten.StandardGamepadButtonLeftBottom:    input.ControllerDpDown,
	ebiten.StandardGamepadButtonLeftLeft:      input.ControllerDpLeft,
	ebiten.StandardGamepadButtonLeftRight:     input.ControllerDpRight,
}

// ButtonFromEbiten maps a standard gamepad button to a controller button
func ButtonFromEbiten(b ebiten.StandardGamepadButton) (input.ControllerButton, bool) {
	code, ok := buttonMap[b]
	return code, ok
}

// axisMap maps standard axes; trigger values come from the trigger buttons
var axisMap = []struct {
	axis ebiten.StandardGamepadAxis
	code input.ControllerAxis
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.AxisLeftX},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.AxisLeftY},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.AxisRightX},
	{ebiten.StandardGamepadAxisRightStickVertical, input.AxisRightY},
}

var triggerMap = []struct {
	button ebiten.StandardGamepadButton
	code   input.ControllerAxis
}{
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.AxisTriggerLeft},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.AxisTriggerRight},
}
