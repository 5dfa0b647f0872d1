//go:build unix

package mpctui

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// pollInput waits until fd is readable or timeout elapses.
func pollInput(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, int(timeout.Milliseconds()))
		if errors.Is(err, unix.EINTR) {
			// SIGWINCH interrupts the wait on resize
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
	}
}
