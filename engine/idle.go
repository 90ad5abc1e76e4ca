package engine

import "time"

// MaxIdleWait caps the event wait while unfocused
const MaxIdleWait = 500 * time.Millisecond

// IdleTimer yields progressively longer event waits while the loop is idle
type IdleTimer struct {
	frame   time.Duration
	current time.Duration
}

// NewIdleTimer starts at one frame time
func NewIdleTimer(frame time.Duration) *IdleTimer {
	t := &IdleTimer{}
	t.SetFrameTime(frame)
	return t
}

// SetFrameTime changes the growth step and resets the timer
func (t *IdleTimer) SetFrameTime(frame time.Duration) {
	if frame <= 0 {
		frame = time.Millisecond
	}
	t.frame = frame
	t.Reset()
}

// Next returns the timeout for the coming wait and grows the following one by a frame
func (t *IdleTimer) Next() time.Duration {
	wait := t.current
	t.current = min(t.current+t.frame, MaxIdleWait)
	return wait
}

// Reset returns to one frame time
func (t *IdleTimer) Reset() {
	t.current = min(t.frame, MaxIdleWait)
}
