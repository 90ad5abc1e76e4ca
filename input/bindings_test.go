package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cadet/config"
	"github.com/lixenwraith/cadet/settings"
)

func TestResolve_Defaults(t *testing.T) {
	bt := NewBindingTable(nil)

	tests := []struct {
		name string
		in   GameInput
		want []Action
	}{
		{"keyboard z", KeyInput('z'), []Action{LeftFlipper}},
		{"keyboard slash", KeyInput('/'), []Action{RightFlipper}},
		{"space", KeyInput(KeySpace), []Action{Plunger}},
		{"up arrow", KeyInput(KeyUp), []Action{BottomBump}},
		{"mouse x1", MouseInput(MouseX1), []Action{LeftBump}},
		{"mouse 6", MouseInput(6), []Action{BottomBump}},
		{"controller a", ControllerInput(ControllerA), []Action{Plunger}},
		{"dpad right", ControllerInput(ControllerDpRight), []Action{RightBump}},
		{"unbound key", KeyInput('q'), nil},
		{"same code other device", MouseInput(MouseButton('z')), nil},
		{"unbound value", Unbound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bt.Resolve(tt.in))
		})
	}
}

func TestResolve_DuplicateBinding(t *testing.T) {
	bt := NewBindingTable(nil)
	require.NoError(t, bt.Set(RightBump, 2, KeyInput('z')))

	assert.Equal(t, []Action{LeftFlipper, RightBump}, bt.Resolve(KeyInput('z')))
}

func TestCapture_FilteredThenAccepted(t *testing.T) {
	bt := NewBindingTable(nil)
	require.True(t, bt.BeginCapture(Plunger, 0))

	before := bt.Binding(Plunger, 0)
	for _, reserved := range []GameInput{
		KeyInput(KeyF1),
		KeyInput(KeyF7),
		KeyInput(KeyF12),
		ControllerInput(ControllerStart),
	} {
		assert.False(t, bt.OnRawInput(reserved), Describe(reserved))
		assert.Equal(t, before, bt.Binding(Plunger, 0))

		slot, ok := bt.Capture()
		assert.True(t, ok)
		assert.Equal(t, Slot{Row: Plunger, Index: 0}, slot)
	}

	assert.True(t, bt.OnRawInput(KeyInput('q')))
	assert.False(t, bt.Capturing())
	assert.Equal(t, KeyInput('q'), bt.Binding(Plunger, 0))
	assert.Contains(t, bt.Resolve(KeyInput('q')), Plunger)

	// Space no longer resolves to plunger
	assert.NotContains(t, bt.Resolve(KeyInput(KeySpace)), Plunger)
}

func TestCapture_NoCursorIsNoop(t *testing.T) {
	bt := NewBindingTable(nil)
	assert.False(t, bt.OnRawInput(KeyInput('q')))
	assert.Equal(t, DefaultRow(LeftFlipper), bt.Row(LeftFlipper))
}

func TestCapture_NewCaptureOverwritesCursor(t *testing.T) {
	bt := NewBindingTable(nil)
	require.True(t, bt.BeginCapture(LeftFlipper, 0))
	require.True(t, bt.BeginCapture(RightBump, 2))

	assert.True(t, bt.OnRawInput(MouseInput(MouseMiddle)))
	assert.Equal(t, DefaultRow(LeftFlipper), bt.Row(LeftFlipper))
	assert.Equal(t, MouseInput(MouseMiddle), bt.Binding(RightBump, 2))
}

func TestCapture_InvalidSlot(t *testing.T) {
	bt := NewBindingTable(nil)
	assert.False(t, bt.BeginCapture(ActionCount, 0))
	assert.False(t, bt.BeginCapture(Plunger, SlotsPerRow))
	assert.False(t, bt.Capturing())
}

func TestCapture_Cancel(t *testing.T) {
	bt := NewBindingTable(nil)
	bt.BeginCapture(Plunger, 1)
	bt.CancelCapture()
	assert.False(t, bt.OnRawInput(KeyInput('q')))
	assert.Equal(t, DefaultRow(Plunger), bt.Row(Plunger))
}

func TestResetAndClear(t *testing.T) {
	bt := NewBindingTable(nil)
	bt.Clear(LeftFlipper)
	assert.Equal(t, Row{Unbound, Unbound, Unbound}, bt.Row(LeftFlipper))
	assert.Empty(t, bt.Resolve(KeyInput('z')))

	bt.Reset(LeftFlipper)
	assert.Equal(t, DefaultRow(LeftFlipper), bt.Row(LeftFlipper))

	require.NoError(t, bt.Set(Plunger, 1, KeyInput('p')))
	bt.BeginCapture(Plunger, 2)
	bt.ResetAll()
	assert.Equal(t, DefaultRow(Plunger), bt.Row(Plunger))
	assert.False(t, bt.Capturing())
}

func TestSet_Rejects(t *testing.T) {
	bt := NewBindingTable(nil)
	assert.Error(t, bt.Set(Plunger, 3, KeyInput('p')))
	assert.Error(t, bt.Set(Plunger, 0, GameInput{Device: DeviceMouse, Code: 0}))
	assert.Error(t, bt.Set(Plunger, 0, GameInput{Device: DeviceClass(9), Code: 1}))
	assert.NoError(t, bt.Set(Plunger, 0, Unbound))
}

func TestSlotKeys(t *testing.T) {
	typeKey, inputKey := SlotKeys(LeftFlipper, 0)
	assert.Equal(t, "Left Flipper key 0 type", typeKey)
	assert.Equal(t, "Left Flipper key 0 input", inputKey)

	typeKey, inputKey = SlotKeys(BottomBump, 2)
	assert.Equal(t, "Bottom Table Bump key 2 type", typeKey)
	assert.Equal(t, "Bottom Table Bump key 2 input", inputKey)
}

func TestSaveLoadRow(t *testing.T) {
	store := settings.NewMemory()

	src := NewBindingTable(nil)
	require.NoError(t, src.Set(RightFlipper, 0, KeyInput(KeyRightShift)))
	src.Clear(LeftBump)
	src.Save(store)

	assert.Equal(t, "1073742053", store.GetSetting("Right Flipper key 0 input", ""))
	assert.Equal(t, "1", store.GetSetting("Right Flipper key 0 type", ""))
	assert.Equal(t, "0", store.GetSetting("Left Table Bump key 1 type", ""))
	assert.Equal(t, "-1", store.GetSetting("Left Table Bump key 1 input", ""))

	dst := NewBindingTable(nil)
	dst.Load(store)
	assert.Equal(t, src.Row(RightFlipper), dst.Row(RightFlipper))
	assert.Equal(t, Row{Unbound, Unbound, Unbound}, dst.Row(LeftBump))
	assert.Equal(t, DefaultRow(Plunger), dst.Row(Plunger))
}

func TestLoadRow_SkipsUnusableEntries(t *testing.T) {
	store := settings.NewMemory()
	// Slot 0: unknown device class
	settings.SetInt(store, "Plunger key 0 type", 7)
	settings.SetInt(store, "Plunger key 0 input", 5)
	// Slot 1: missing code
	settings.SetInt(store, "Plunger key 1 type", int(DeviceMouse))
	settings.SetInt(store, "Plunger key 1 input", -1)
	// Slot 2: valid
	settings.SetInt(store, "Plunger key 2 type", int(DeviceController))
	settings.SetInt(store, "Plunger key 2 input", int(ControllerY))

	bt := NewBindingTable(nil)
	bt.LoadRow(store, Plunger)

	def := DefaultRow(Plunger)
	assert.Equal(t, def[0], bt.Binding(Plunger, 0))
	assert.Equal(t, def[1], bt.Binding(Plunger, 1))
	assert.Equal(t, ControllerInput(ControllerY), bt.Binding(Plunger, 2))

	// Codes outside the device class range
	settings.SetInt(store, "Right Flipper key 0 type", int(DeviceKeyboard))
	settings.SetInt(store, "Right Flipper key 0 input", -7)
	settings.SetInt(store, "Right Flipper key 1 type", int(DeviceMouse))
	settings.SetInt(store, "Right Flipper key 1 input", 999)
	bt.LoadRow(store, RightFlipper)
	assert.Equal(t, DefaultRow(RightFlipper), bt.Row(RightFlipper))
	for i := 0; i < SlotsPerRow; i++ {
		assert.True(t, bt.Binding(RightFlipper, i).Valid())
	}

	// Row with nothing stored keeps defaults
	bt.LoadRow(settings.NewMemory(), LeftFlipper)
	assert.Equal(t, DefaultRow(LeftFlipper), bt.Row(LeftFlipper))
}

func TestBindingTable_RegistersWithConfig(t *testing.T) {
	cfg := config.New()
	bt := NewBindingTable(cfg)

	var names []string
	for _, o := range cfg.Options() {
		names = append(names, o.Name())
	}
	assert.Contains(t, names, "Left Flipper key")
	assert.Contains(t, names, "Bottom Table Bump key")

	var changes int
	cfg.Watch(func(ch config.Change) {
		if ch.Field == config.FieldBindings {
			changes++
		}
	})

	bt.BeginCapture(LeftFlipper, 1)
	bt.OnRawInput(KeyInput('a'))
	assert.Equal(t, 1, changes)

	store := settings.NewMemory()
	cfg.Save(store)
	assert.Equal(t, "97", store.GetSetting("Left Flipper key 1 input", ""))

	changes = 0
	cfg.ResetAll()
	assert.Equal(t, DefaultRow(LeftFlipper), bt.Row(LeftFlipper))
	assert.Equal(t, int(ActionCount), changes, "each reset row is announced")

	cfg.Load(store)
	assert.Equal(t, KeyInput('a'), bt.Binding(LeftFlipper, 1))
}
