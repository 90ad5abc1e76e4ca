package input

// ControllerButton is a standard-layout gamepad button code
type ControllerButton int

const (
	ControllerA ControllerButton = iota
	ControllerB
	ControllerX
	ControllerY
	ControllerBack
	ControllerGuide
	ControllerStart
	ControllerLeftStick
	ControllerRightStick
	ControllerLeftShoulder
	ControllerRightShoulder
	ControllerDpUp
	ControllerDpDown
	ControllerDpLeft
	ControllerDpRight
	ControllerMisc1
	ControllerPaddle1
	ControllerPaddle2
	ControllerPaddle3
	ControllerPaddle4
	ControllerTouchpad
)

// maxControllerCode bounds accepted controller codes
const maxControllerCode = 63

var controllerNames = [...]string{
	ControllerA:             "A",
	ControllerB:             "B",
	ControllerX:             "X",
	ControllerY:             "Y",
	ControllerBack:          "Back",
	ControllerGuide:         "Guide",
	ControllerStart:         "Start",
	ControllerLeftStick:     "LeftStick",
	ControllerRightStick:    "RightStick",
	ControllerLeftShoulder:  "LeftShoulder",
	ControllerRightShoulder: "RightShoulder",
	ControllerDpUp:          "DpUp",
	ControllerDpDown:        "DpDown",
	ControllerDpLeft:        "DpLeft",
	ControllerDpRight:       "DpRight",
	ControllerMisc1:         "Misc1",
	ControllerPaddle1:       "Paddle1",
	ControllerPaddle2:       "Paddle2",
	ControllerPaddle3:       "Paddle3",
	ControllerPaddle4:       "Paddle4",
	ControllerTouchpad:      "Touchpad",
}

// ControllerButtonName returns the display name, empty outside A..Touchpad
func ControllerButtonName(b ControllerButton) string {
	if b < ControllerA || int(b) >= len(controllerNames) {
		return ""
	}
	return controllerNames[b]
}

// ControllerAxis is a standard-layout gamepad axis
type ControllerAxis int

const (
	AxisLeftX ControllerAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)
