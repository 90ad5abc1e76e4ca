package input

// MouseButton is a mouse button code
type MouseButton int

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 3
	MouseX1     MouseButton = 4 // Back
	MouseX2     MouseButton = 5 // Forward
)

// maxMouseCode bounds accepted mouse codes; higher buttons exist on gaming mice
const maxMouseCode = 32

var mouseNames = [...]string{
	MouseLeft:   "Left",
	MouseMiddle: "Middle",
	MouseRight:  "Right",
	MouseX1:     "X1",
	MouseX2:     "X2",
}

// MouseButtonName returns the display name, empty outside Left..X2
func MouseButtonName(b MouseButton) string {
	if b < MouseLeft || int(b) >= len(mouseNames) {
		return ""
	}
	return mouseNames[b]
}
