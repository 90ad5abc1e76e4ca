package input

// Action is a logical game action; order is the resolution order
type Action int

const (
	LeftFlipper Action = iota
	RightFlipper
	Plunger
	LeftBump
	RightBump
	BottomBump

	ActionCount
)

var actionNames = [ActionCount]string{
	LeftFlipper:  "Left Flipper",
	RightFlipper: "Right Flipper",
	Plunger:      "Plunger",
	LeftBump:     "Left Table Bump",
	RightBump:    "Right Table Bump",
	BottomBump:   "Bottom Table Bump",
}

// Actions returns all actions in enumeration order
func Actions() []Action {
	out := make([]Action, ActionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	return a >= 0 && a < ActionCount
}

// String returns the display name
func (a Action) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return actionNames[a]
}

// SettingName returns the persisted row name
func (a Action) SettingName() string {
	return a.String() + " key"
}
