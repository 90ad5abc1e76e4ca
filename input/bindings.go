package input

import (
	"fmt"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/settings"
)

// SlotsPerRow is the number of alternative bindings per action
const SlotsPerRow = 3

// Row holds the bindings of one action
type Row [SlotsPerRow]GameInput

// Slot addresses one binding cell
type Slot struct {
	Row   Action
	Index int
}

// Valid reports whether the slot addresses an existing cell
func (s Slot) Valid() bool {
	return s.Row.Valid() && s.Index >= 0 && s.Index < SlotsPerRow
}

// defaultRows are the compiled-in bindings
var defaultRows = [ActionCount]Row{
	LeftFlipper:  {KeyInput('z'), MouseInput(MouseLeft), ControllerInput(ControllerLeftShoulder)},
	RightFlipper: {KeyInput('/'), MouseInput(MouseRight), ControllerInput(ControllerRightShoulder)},
	Plunger:      {KeyInput(KeySpace), MouseInput(MouseMiddle), ControllerInput(ControllerA)},
	LeftBump:     {KeyInput('x'), MouseInput(MouseX1), ControllerInput(ControllerDpLeft)},
	RightBump:    {KeyInput('.'), MouseInput(MouseX2), ControllerInput(ControllerDpRight)},
	BottomBump:   {KeyInput(KeyUp), MouseInput(MouseX2 + 1), ControllerInput(ControllerDpUp)},
}

// DefaultRow returns the compiled-in bindings of an action
func DefaultRow(a Action) Row {
	if !a.Valid() {
		return Row{Unbound, Unbound, Unbound}
	}
	return defaultRows[a]
}

// BindingTable maps raw inputs to actions and owns the rebinding capture cursor
// Single-goroutine: mutated only from the loop goroutine
type BindingTable struct {
	cfg       *config.Config
	rows      [ActionCount]Row
	capture   Slot
	capturing bool
}

// NewBindingTable creates a table with default bindings
// When cfg is non-nil one persisted option per row is registered with it and mutations are announced
func NewBindingTable(cfg *config.Config) *BindingTable {
	t := &BindingTable{
		cfg:  cfg,
		rows: defaultRows,
	}
	if cfg != nil {
		for _, a := range Actions() {
			cfg.Register(&rowOption{table: t, action: a})
		}
	}
	return t
}

// Resolve returns every action with a slot equal to in, in enumeration order
// Unbound never resolves
func (t *BindingTable) Resolve(in GameInput) []Action {
	if in.IsUnbound() {
		return nil
	}
	var out []Action
	for a := Action(0); a < ActionCount; a++ {
		for _, b := range t.rows[a] {
			if b == in {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// BeginCapture points the capture cursor at a slot, replacing any pending capture
func (t *BindingTable) BeginCapture(row Action, index int) bool {
	s := Slot{Row: row, Index: index}
	if !s.Valid() {
		return false
	}
	t.capture = s
	t.capturing = true
	return true
}

// CancelCapture clears the capture cursor without writing
func (t *BindingTable) CancelCapture() {
	t.capturing = false
	t.capture = Slot{}
}

// Capture returns the pending capture slot
func (t *BindingTable) Capture() (Slot, bool) {
	return t.capture, t.capturing
}

// Capturing reports whether a capture is pending
func (t *BindingTable) Capturing() bool {
	return t.capturing
}

// Reserved reports whether in may never be captured
// Function keys belong to the application; controller Start is pause
func Reserved(in GameInput) bool {
	switch in.Device {
	case DeviceKeyboard:
		return Key(in.Code).IsFunctionKey()
	case DeviceController:
		return ControllerButton(in.Code) == ControllerStart
	}
	return false
}

// OnRawInput feeds a pressed input to a pending capture
// Returns true if the input was written; filtered input leaves the cursor active
func (t *BindingTable) OnRawInput(in GameInput) bool {
	if !t.capturing {
		return false
	}
	if in.IsUnbound() || Reserved(in) {
		return false
	}
	t.rows[t.capture.Row][t.capture.Index] = in
	t.CancelCapture()
	t.changed()
	return true
}

// Binding returns one slot, Unbound when out of range
func (t *BindingTable) Binding(row Action, index int) GameInput {
	if !(Slot{Row: row, Index: index}).Valid() {
		return Unbound
	}
	return t.rows[row][index]
}

// Row returns a copy of an action's bindings
func (t *BindingTable) Row(row Action) Row {
	if !row.Valid() {
		return Row{Unbound, Unbound, Unbound}
	}
	return t.rows[row]
}

// Set writes one slot directly
func (t *BindingTable) Set(row Action, index int, in GameInput) error {
	if !(Slot{Row: row, Index: index}).Valid() {
		return fmt.Errorf("slot %v/%d out of range", row, index)
	}
	if !in.Valid() {
		return fmt.Errorf("invalid %s input code %d", in.Device, in.Code)
	}
	t.rows[row][index] = in
	t.changed()
	return nil
}

// Reset restores one row to its defaults
func (t *BindingTable) Reset(row Action) {
	if !row.Valid() {
		return
	}
	t.rows[row] = defaultRows[row]
	t.changed()
}

// ResetAll restores every row to its defaults and cancels a pending capture
func (t *BindingTable) ResetAll() {
	t.rows = defaultRows
	t.CancelCapture()
	t.changed()
}

// Clear unbinds all slots of one row
func (t *BindingTable) Clear(row Action) {
	if !row.Valid() {
		return
	}
	t.rows[row] = Row{Unbound, Unbound, Unbound}
	t.changed()
}

// SlotKeys returns the persistence keys of one slot
func SlotKeys(row Action, index int) (typeKey, inputKey string) {
	base := fmt.Sprintf("%s %d", row.SettingName(), index)
	return base + " type", base + " input"
}

// SaveRow writes one row as (device class, code) pairs
func (t *BindingTable) SaveRow(s settings.Store, row Action) {
	if !row.Valid() {
		return
	}
	for i, in := range t.rows[row] {
		typeKey, inputKey := SlotKeys(row, i)
		settings.SetInt(s, typeKey, int(in.Device))
		settings.SetInt(s, inputKey, in.Code)
	}
}

// LoadRow reads one row, keeping the current value of slots with unusable entries
// A stored DeviceNone type is an explicit unbind
func (t *BindingTable) LoadRow(s settings.Store, row Action) {
	if !row.Valid() {
		return
	}
	for i := range t.rows[row] {
		typeKey, inputKey := SlotKeys(row, i)
		device := DeviceClass(settings.GetInt(s, typeKey, -1))
		code := settings.GetInt(s, inputKey, -1)

		if device == DeviceNone {
			t.rows[row][i] = Unbound
			continue
		}
		if in := (GameInput{Device: device, Code: code}); in.Valid() {
			t.rows[row][i] = in
		}
	}
}

// Save writes every row
func (t *BindingTable) Save(s settings.Store) {
	for _, a := range Actions() {
		t.SaveRow(s, a)
	}
}

// Load reads every row
func (t *BindingTable) Load(s settings.Store) {
	for _, a := range Actions() {
		t.LoadRow(s, a)
	}
	t.changed()
}

func (t *BindingTable) changed() {
	if t.cfg != nil {
		t.cfg.NotifyBindings()
	}
}

// rowOption persists one binding row through the configuration option list
type rowOption struct {
	table  *BindingTable
	action Action
}

func (o *rowOption) Name() string          { return o.action.SettingName() }
func (o *rowOption) Save(s settings.Store) { o.table.SaveRow(s, o.action) }
func (o *rowOption) Reset()                { o.table.Reset(o.action) }

func (o *rowOption) Load(s settings.Store) {
	o.table.LoadRow(s, o.action)
	o.table.changed()
}
