package main

import (
	"time"

	"github.com/lixenwraith/cadet/input"
)

// Clicker plays feedback for an action press
type Clicker interface {
	Click(a input.Action)
}

// Table is the stand-in simulation: it tracks held actions and simulated time
type Table struct {
	held    [input.ActionCount]bool
	presses [input.ActionCount]int
	elapsed float64 // ms
	updates int

	sound Clicker
}

// NewTable creates an idle table
func NewTable() *Table {
	return &Table{}
}

// SetSound replaces the press feedback, nil for none
func (t *Table) SetSound(c Clicker) {
	t.sound = c
}

// Update implements engine.Simulation
func (t *Table) Update(dtMs float64) {
	t.elapsed += dtMs
	t.updates++
}

// ActionDown implements engine.Simulation
func (t *Table) ActionDown(a input.Action) {
	if !a.Valid() {
		return
	}
	if !t.held[a] {
		t.presses[a]++
		if t.sound != nil {
			t.sound.Click(a)
		}
	}
	t.held[a] = true
}

// ActionUp implements engine.Simulation
func (t *Table) ActionUp(a input.Action) {
	if a.Valid() {
		t.held[a] = false
	}
}

// LoseFocus implements engine.Simulation; buttons released while unfocused are never reported
func (t *Table) LoseFocus() {
	t.held = [input.ActionCount]bool{}
}

// Held returns the held actions in enumeration order
func (t *Table) Held() []input.Action {
	var out []input.Action
	for _, a := range input.Actions() {
		if t.held[a] {
			out = append(out, a)
		}
	}
	return out
}

// Presses returns how often a was pressed
func (t *Table) Presses(a input.Action) int {
	if !a.Valid() {
		return 0
	}
	return t.presses[a]
}

// Elapsed returns the simulated time
func (t *Table) Elapsed() time.Duration {
	return time.Duration(t.elapsed * float64(time.Millisecond))
}

// Updates returns the number of simulation steps
func (t *Table) Updates() int {
	return t.updates
}
