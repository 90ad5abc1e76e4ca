package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cadet/input"
)

type clickLog []input.Action

func (c *clickLog) Click(a input.Action) { *c = append(*c, a) }

func TestTable_HeldAndPresses(t *testing.T) {
	var clicks clickLog
	tbl := NewTable()
	tbl.SetSound(&clicks)

	tbl.ActionDown(input.Plunger)
	tbl.ActionDown(input.Plunger) // second binding of the same action
	tbl.ActionDown(input.LeftFlipper)
	assert.Equal(t, []input.Action{input.LeftFlipper, input.Plunger}, tbl.Held())
	assert.Equal(t, 1, tbl.Presses(input.Plunger))
	assert.Equal(t, clickLog{input.Plunger, input.LeftFlipper}, clicks)

	tbl.ActionUp(input.Plunger)
	assert.Equal(t, []input.Action{input.LeftFlipper}, tbl.Held())

	tbl.LoseFocus()
	assert.Empty(t, tbl.Held())

	tbl.ActionDown(input.ActionCount)
	assert.Equal(t, 0, tbl.Presses(input.ActionCount))
}

func TestTable_Update(t *testing.T) {
	tbl := NewTable()
	tbl.Update(8.5)
	tbl.Update(1.5)
	assert.Equal(t, 2, tbl.Updates())
	assert.Equal(t, 10*time.Millisecond, tbl.Elapsed())
}
