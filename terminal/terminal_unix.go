//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// platformWidth queries the window size on stderr, then stdin. Either is
// still attached to the terminal when stdout is redirected.
func platformWidth() (int, error) {
	var lastErr error
	for _, fd := range []int{unix.Stderr, unix.Stdin} {
		ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
		if err != nil {
			lastErr = err
			continue
		}
		if ws.Col > 0 {
			return int(ws.Col), nil
		}
	}
	if lastErr == nil {
		lastErr = ErrNoTerminal
	}
	return 0, lastErr
}
