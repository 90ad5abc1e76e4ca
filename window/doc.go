// Package window is the desktop backend built on ebiten: keyboard, mouse and
// standard-layout gamepads feed input.Queue, and the control panel is drawn
// as debug text.
//
// Ebiten owns the main thread. The game loop runs on its own goroutine and
// never touches ebiten state; events cross through the queue and frames
// cross through Presenter snapshots.
package window

import "github.com/lixenwraith/cadet/input"

// EventSink receives translated events; input.Queue in production
type EventSink interface {
	Push(e input.Event)
}

// LineSource supplies the text to present each frame
type LineSource interface {
	Lines() []string
}
