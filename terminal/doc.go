// Package terminal is the tcell backend: an event source feeding input.Queue
// and a text presenter for the control panel.
//
// Terminals report key presses only. Every press is delivered as KeyDown
// immediately followed by KeyUp, so held-button gameplay degrades to taps.
// Mouse buttons arrive as a pressed-button mask; press and release events
// are derived from the difference between consecutive masks.
package terminal
