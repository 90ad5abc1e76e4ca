package input

import "fmt"

// DeviceClass identifies the physical device family of a raw input
// Values are persisted; do not reorder
type DeviceClass int

const (
	DeviceNone DeviceClass = iota
	DeviceKeyboard
	DeviceMouse
	DeviceController
)

// String returns the device label used in descriptions
func (d DeviceClass) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceMouse:
		return "Mouse"
	case DeviceController:
		return "Controller"
	case DeviceNone:
		return "None"
	default:
		return fmt.Sprintf("Device(%d)", int(d))
	}
}

// GameInput is a device-tagged button code; comparable with ==
type GameInput struct {
	Device DeviceClass
	Code   int
}

// Unbound is the empty slot value
var Unbound = GameInput{Device: DeviceNone, Code: -1}

// KeyInput wraps a keyboard key code
func KeyInput(k Key) GameInput {
	return GameInput{Device: DeviceKeyboard, Code: int(k)}
}

// MouseInput wraps a mouse button
func MouseInput(b MouseButton) GameInput {
	return GameInput{Device: DeviceMouse, Code: int(b)}
}

// ControllerInput wraps a controller button
func ControllerInput(b ControllerButton) GameInput {
	return GameInput{Device: DeviceController, Code: int(b)}
}

// IsUnbound reports whether the input denotes an empty slot
func (in GameInput) IsUnbound() bool {
	return in.Device == DeviceNone
}

// Valid reports whether the code is in range for its device class
func (in GameInput) Valid() bool {
	switch in.Device {
	case DeviceNone:
		return in.Code == -1
	case DeviceKeyboard:
		return in.Code > 0
	case DeviceMouse:
		return in.Code >= int(MouseLeft) && in.Code <= maxMouseCode
	case DeviceController:
		return in.Code >= 0 && in.Code <= maxControllerCode
	default:
		return false
	}
}

// Phase distinguishes press from release
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseUp
)

// String returns the phase name
func (p Phase) String() string {
	if p == PhaseUp {
		return "up"
	}
	return "down"
}
