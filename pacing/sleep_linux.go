//go:build linux

package pacing

import (
	"time"

	"golang.org/x/sys/unix"
)

// sleep blocks the calling thread via nanosleep, resuming after signal interruption
func sleep(d time.Duration) {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	var left unix.Timespec
	for {
		err := unix.Nanosleep(&ts, &left)
		if err != unix.EINTR {
			return
		}
		ts = left
	}
}
