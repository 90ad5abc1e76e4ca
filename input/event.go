package input

// EventType discriminates raw events
type EventType uint8

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventMouseUp
	EventMouseMotion
	EventControllerDown
	EventControllerUp
	EventControllerAxis
	EventFocusGained
	EventFocusLost
	EventResize
	EventDeviceAdded
	EventDeviceRemoved
)

var eventTypeNames = [...]string{
	EventNone:           "none",
	EventQuit:           "quit",
	EventKeyDown:        "key down",
	EventKeyUp:          "key up",
	EventMouseDown:      "mouse down",
	EventMouseUp:        "mouse up",
	EventMouseMotion:    "mouse motion",
	EventControllerDown: "controller down",
	EventControllerUp:   "controller up",
	EventControllerAxis: "controller axis",
	EventFocusGained:    "focus gained",
	EventFocusLost:      "focus lost",
	EventResize:         "resize",
	EventDeviceAdded:    "device added",
	EventDeviceRemoved:  "device removed",
}

// String returns the event type name
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one raw event from a backend
type Event struct {
	Type   EventType
	Code   int  // Key, mouse button or controller button code
	Repeat bool // Key auto-repeat

	// Pointer position for mouse events, size for EventResize
	X, Y int

	// Controller axis events
	Axis  ControllerAxis
	Value float64

	// Controller index for controller and device events
	Device int
}

// Input classifies button events into a device-tagged input and phase
// ok is false for non-button events
func (e Event) Input() (in GameInput, phase Phase, ok bool) {
	switch e.Type {
	case EventKeyDown:
		return GameInput{Device: DeviceKeyboard, Code: e.Code}, PhaseDown, true
	case EventKeyUp:
		return GameInput{Device: DeviceKeyboard, Code: e.Code}, PhaseUp, true
	case EventMouseDown:
		return GameInput{Device: DeviceMouse, Code: e.Code}, PhaseDown, true
	case EventMouseUp:
		return GameInput{Device: DeviceMouse, Code: e.Code}, PhaseUp, true
	case EventControllerDown:
		return GameInput{Device: DeviceController, Code: e.Code}, PhaseDown, true
	case EventControllerUp:
		return GameInput{Device: DeviceController, Code: e.Code}, PhaseUp, true
	}
	return Unbound, PhaseDown, false
}

// KeyPress builds a key press event
func KeyPress(k Key) Event {
	return Event{Type: EventKeyDown, Code: int(k)}
}

// KeyRelease builds a key release event
func KeyRelease(k Key) Event {
	return Event{Type: EventKeyUp, Code: int(k)}
}
