package input

import "strconv"

// UnusedLabel describes an empty slot
const UnusedLabel = "Unused"

// Describe renders a device label and a symbolic button name, e.g. "Keyboard Z"
// Codes without a symbolic name fall back to the number
func Describe(in GameInput) string {
	var name string
	switch in.Device {
	case DeviceKeyboard:
		name = KeyName(Key(in.Code))
	case DeviceMouse:
		name = MouseButtonName(MouseButton(in.Code))
	case DeviceController:
		name = ControllerButtonName(ControllerButton(in.Code))
	default:
		return UnusedLabel
	}
	if name == "" {
		name = strconv.Itoa(in.Code)
	}
	return in.Device.String() + " " + name
}
